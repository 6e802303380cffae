package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongkwon0918/Clippy/internal/cli/formatter"
	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	tasks, err := app.Tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskInspectCmd(app),
		newTaskToggleCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var teamID string
	var mine, open, done bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter := repository.TaskFilter{}
			if teamID != "" {
				filter.Source = domain.SourceTeam
				filter.TeamID = teamID
			}
			if mine {
				user, err := requireUser(ctx, app)
				if err != nil {
					return err
				}
				filter.Assignee = user.Name
			}
			if open != done {
				completed := done
				filter.Completed = &completed
			}

			tasks, err := app.Tasks.List(ctx, filter)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&teamID, "team", "", "Only tasks belonging to this team")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only tasks assigned exactly to your display name")
	cmd.Flags().BoolVar(&open, "open", false, "Only open tasks")
	cmd.Flags().BoolVar(&done, "done", false, "Only completed tasks")

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var assignee, priority, department, deadline, teamID string

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION",
		Short: "Create a task by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			task := &domain.Task{
				Description: args[0],
				Assignee:    assignee,
				Priority:    domain.Priority(priority),
				Department:  department,
				Deadline:    deadline,
			}
			if teamID != "" {
				task.Source = domain.SourceTeam
				task.TeamID = teamID
			}
			if err := app.Tasks.Create(ctx, task, actor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s)\n", task.Description, task.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee (defaults to you)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: High, Medium or Low (default Medium)")
	cmd.Flags().StringVar(&department, "department", "", "Department (default General)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline: YYYY-MM-DD or \"YYYY-MM-DD HH:mm\" (default none)")
	cmd.Flags().StringVar(&teamID, "team", "", "Create as a team task for this team")

	return cmd
}

func newTaskInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Get(ctx, taskID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(task))
			return nil
		},
	}
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a task between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Toggle(ctx, taskID, actor)
			if err != nil {
				return err
			}
			state := "open"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %q is now %s\n", task.Description, state)
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var description, assignee, priority, department, deadline string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Get(ctx, taskID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("description") {
				task.Description = description
			}
			if cmd.Flags().Changed("assignee") {
				task.Assignee = assignee
			}
			if cmd.Flags().Changed("priority") {
				task.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("department") {
				task.Department = department
			}
			if cmd.Flags().Changed("deadline") {
				task.Deadline = deadline
			}

			if err := app.Tasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %q\n", task.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&assignee, "assignee", "", "New assignee")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority (High, Medium, Low)")
	cmd.Flags().StringVar(&department, "department", "", "New department")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline (YYYY-MM-DD, \"YYYY-MM-DD HH:mm\" or \"no deadline\")")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, taskID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", taskID[:8])
			return nil
		},
	}
}
