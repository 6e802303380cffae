package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongkwon0918/Clippy/internal/cli/formatter"
)

func newDecisionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decision",
		Short: "Meeting decisions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show every recorded decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			decisions, err := app.Decisions.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDecisions(decisions))
			return nil
		},
	})

	return cmd
}
