package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongkwon0918/Clippy/internal/cli/formatter"
	"github.com/jongkwon0918/Clippy/internal/service"
)

// audioMIMETypes maps recording file extensions to the MIME type sent to the
// analyzer. Anything else is treated as transcript text.
var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
}

func newAnalyzeCmd(app *App) *cobra.Command {
	var teamID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze meeting minutes (text or audio) and review the proposed tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Analyzer == nil {
				return fmt.Errorf("analysis is disabled: set GEMINI_API_KEY to enable it")
			}
			ctx := context.Background()

			actor, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			rctx := service.ReviewContext{Mode: service.ModePersonal}
			var roster []string
			if teamID != "" {
				resolved, err := resolveTeamID(ctx, app, teamID)
				if err != nil {
					return err
				}
				team, err := app.Teams.Get(ctx, resolved)
				if err != nil {
					return err
				}
				rctx = service.ReviewContext{Mode: service.ModeTeam, TeamID: team.ID}
				roster = team.PlainMembers()
			}

			content, mimeType, err := readMeetingFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Analyzing..."))
			draft, err := app.Analyzer.Analyze(ctx, content, mimeType, roster)
			if err != nil {
				return err
			}

			session, err := app.Reviews.Stage(draft, rctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDraftReview(session))

			if !yes {
				if !app.Interactive {
					app.Reviews.Cancel(session)
					return fmt.Errorf("not a terminal: pass --yes to confirm every proposed task")
				}
				confirmed, err := runReviewForm(app, session, roster)
				if err != nil {
					return err
				}
				if !confirmed {
					app.Reviews.Cancel(session)
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Review cancelled. Nothing saved."))
					return nil
				}
			}

			tasks, err := app.Reviews.Confirm(ctx, session, actor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConfirmedTasks(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&teamID, "team", "", "Stage confirmed tasks for this team instead of your personal list")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the review form and confirm every proposed task")

	return cmd
}

func readMeetingFile(path string) (content, mimeType string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := audioMIMETypes[ext]; ok {
		return base64.StdEncoding.EncodeToString(data), mt, nil
	}
	return string(data), "text/plain", nil
}
