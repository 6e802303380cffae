package formatter

import (
	"fmt"
	"strings"

	"github.com/jongkwon0918/Clippy/internal/domain"
)

// FormatTaskList renders tasks as a table. IDs are shown truncated; commands
// accept the prefix back.
func FormatTaskList(tasks []*domain.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Checkbox(t.Completed),
			Dim(shortID(t.ID)),
			t.Description,
			t.Assignee,
			Priority(t.Priority),
			formatDeadline(t.Deadline),
			formatSource(t),
		})
	}
	return RenderTable(
		[]string{"", "ID", "Task", "Assignee", "Priority", "Deadline", "Scope"},
		rows,
	)
}

// FormatTaskDetail renders a single task with every field.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(t.Description) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Status:"), statusLabel(t.Completed)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Assignee:"), t.Assignee))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Priority:"), Priority(t.Priority)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Department:"), t.Department))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Deadline:"), formatDeadline(t.Deadline)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Scope:"), formatSource(t)))
	if t.RelatedSummary != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("From meeting:"), Dim(t.RelatedSummary)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("ID:"), Dim(t.ID)))
	return b.String()
}

func formatDeadline(deadline string) string {
	if deadline == domain.NoDeadline {
		return Dim(deadline)
	}
	if domain.DeadlineHasTime(deadline) {
		return StylePurple.Render(deadline)
	}
	return StyleBlue.Render(deadline)
}

func formatSource(t *domain.Task) string {
	if t.Source == domain.SourceTeam {
		return StyleBlue.Render("team " + shortID(t.TeamID))
	}
	return Dim("personal")
}

func statusLabel(completed bool) string {
	if completed {
		return StyleGreen.Render("done")
	}
	return StyleYellow.Render("open")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
