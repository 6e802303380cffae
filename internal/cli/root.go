package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongkwon0918/Clippy/internal/analyzer"
	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
// Analyzer is nil when no API key is configured; commands that need it
// report that instead of failing mid-call.
type App struct {
	Reviews   service.ReviewService
	Tasks     service.TaskService
	Teams     service.TeamService
	Profiles  service.ProfileService
	Decisions service.DecisionService
	Analyzer  analyzer.Service

	// Interactive is true when stdout is a terminal; it gates the huh
	// review form.
	Interactive bool
}

// NewRootCmd creates the top-level "clippy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "clippy",
		Short:         "Meeting assistant: turn minutes into tasks, decisions and team updates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newTaskCmd(app),
		newTeamCmd(app),
		newUserCmd(app),
		newDecisionCmd(app),
	)

	return root
}

// requireUser resolves the signed-in user or tells the caller how to get one.
func requireUser(ctx context.Context, app *App) (*domain.User, error) {
	user, err := app.Profiles.Current(ctx)
	if err != nil {
		var nferr *domain.NotFoundError
		if errors.As(err, &nferr) {
			return nil, fmt.Errorf("not signed in (run `clippy user register` or `clippy user login` first)")
		}
		return nil, err
	}
	return user, nil
}
