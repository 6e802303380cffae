package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongkwon0918/Clippy/internal/cli/formatter"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage your profile and session",
	}

	cmd.AddCommand(
		newUserRegisterCmd(app),
		newUserLoginCmd(app),
		newUserLogoutCmd(app),
		newUserWhoamiCmd(app),
		newUserRenameCmd(app),
		newUserDeleteCmd(app),
	)

	return cmd
}

func newUserRegisterCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register USERNAME",
		Short: "Create a profile and sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Profiles.Register(context.Background(), args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUser(user))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name shown on tasks and rosters")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME",
		Short: "Sign in as an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Profiles.Login(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Name)
			return nil
		},
	}
}

func newUserLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newUserWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile and invitation code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUser(user))
			return nil
		},
	}
}

func newUserRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename NEW_NAME",
		Short: "Change your display name everywhere it appears",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			renamed, err := app.Profiles.Rename(ctx, user, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s across tasks, rosters and announcements\n",
				user.Name, renamed.Name)
			return nil
		},
	}
}

func newUserDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			if err := app.Profiles.DeleteAccount(ctx, user); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", user.Username)
			return nil
		},
	}
}
