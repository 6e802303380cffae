package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/jongkwon0918/Clippy/internal/analyzer"
	"github.com/jongkwon0918/Clippy/internal/cli"
	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/llm"
	"github.com/jongkwon0918/Clippy/internal/repository"
	"github.com/jongkwon0918/Clippy/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env can carry GEMINI_API_KEY; absence is fine.
	_ = godotenv.Load()

	dbPath := os.Getenv("CLIPPY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".clippy", "clippy.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	announcementRepo := repository.NewSQLiteAnnouncementRepo(database)
	decisionRepo := repository.NewSQLiteDecisionRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Reviews:   service.NewReviewService(uow),
		Tasks:     service.NewTaskService(taskRepo),
		Teams:     service.NewTeamService(teamRepo, taskRepo, announcementRepo, userRepo, uow),
		Profiles:  service.NewProfileService(userRepo, uow),
		Decisions: service.NewDecisionService(decisionRepo),

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	// The analyzer stays nil without an API key; the analyze command
	// explains how to enable it.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled() {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Analyzer = analyzer.NewService(llm.NewGeminiClient(llmCfg, observer))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
