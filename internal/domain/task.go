package domain

import "fmt"

// Task is a single actionable item extracted from a meeting or entered by
// hand. Assignee is a display-name snapshot, not a user id: renaming a user
// rewrites matching assignee strings (see ProfileService) rather than
// following a reference.
type Task struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	Assignee       string     `json:"assignee"`
	Priority       Priority   `json:"priority"`
	Department     string     `json:"department"`
	Deadline       string     `json:"deadline"`
	Completed      bool       `json:"completed"`
	Source         TaskSource `json:"source"`
	TeamID         string     `json:"teamId,omitempty"`
	RelatedSummary string     `json:"relatedSummary,omitempty"`
}

// Validate checks the cross-field invariants the persistence layer does not
// enforce. TeamID must be set exactly when the task is team-sourced.
func (t *Task) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("task description is required")
	}
	if !ValidPriorities[t.Priority] {
		return fmt.Errorf("invalid priority %q (want High, Medium or Low)", t.Priority)
	}
	switch t.Source {
	case SourcePersonal:
		if t.TeamID != "" {
			return fmt.Errorf("personal task must not carry a team id")
		}
	case SourceTeam:
		if t.TeamID == "" {
			return fmt.Errorf("team task requires a team id")
		}
	default:
		return fmt.Errorf("invalid source %q (want personal or team)", t.Source)
	}
	if err := ValidateDeadline(t.Deadline); err != nil {
		return err
	}
	return nil
}
