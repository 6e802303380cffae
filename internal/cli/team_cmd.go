package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongkwon0918/Clippy/internal/cli/formatter"
)

func resolveTeamID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("team ID is required")
	}
	teams, err := app.Teams.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range teams {
		if t.ID == input {
			return t.ID, nil
		}
	}
	for _, t := range teams {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range teams {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("team not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("team ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams and announcements",
	}

	cmd.AddCommand(
		newTeamCreateCmd(app),
		newTeamListCmd(app),
		newTeamInspectCmd(app),
		newTeamDeleteCmd(app),
		newTeamJoinCmd(app),
		newTeamLeaveCmd(app),
		newTeamNoticeCmd(app),
	)

	return cmd
}

func newTeamCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a team (you become its admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			creator, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			team, err := app.Teams.CreateTeam(ctx, args[0], creator)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created team %s (%s)\n", team.Name, team.ID[:8])
			return nil
		},
	}
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Teams.List(context.Background())
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No teams found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTeamList(teams))
			return nil
		},
	}
}

func newTeamInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a team's roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			team, err := app.Teams.Get(ctx, teamID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTeamDetail(team))
			return nil
		},
	}
}

func newTeamDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a team with its tasks and announcements (creator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			requester, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.DeleteTeam(ctx, teamID, requester); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted team %s and everything scoped to it\n", teamID[:8])
			return nil
		},
	}
}

func newTeamJoinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "join TEAM CODE",
		Short: "Add a user to a team by their invitation code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			team, err := app.Teams.Join(ctx, teamID, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Roster of %s: %s\n", team.Name, strings.Join(team.Members, ", "))
			return nil
		},
	}
}

func newTeamLeaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "leave ID",
		Short: "Leave a team, removing your tasks and the team's announcements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Leave(ctx, teamID, member); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Left team %s\n", teamID[:8])
			return nil
		},
	}
}

func newTeamNoticeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notice",
		Short: "Team announcements",
	}

	add := &cobra.Command{
		Use:   "add TEAM CONTENT",
		Short: "Post an announcement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			author, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			notice, err := app.Teams.AddAnnouncement(ctx, teamID, args[1], author)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted announcement (%s)\n", notice.CreatedAt)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list TEAM",
		Short: "Show announcements, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			notices, err := app.Teams.Announcements(ctx, teamID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnnouncements(notices))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
