package formatter

import (
	"fmt"
	"strings"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/service"
)

// FormatDraftReview renders a staged review session: the meeting summary,
// the proposed tasks with their selection state, and the captured decisions.
func FormatDraftReview(session *service.ReviewSession) string {
	var b strings.Builder

	b.WriteString(Header("Meeting summary") + "\n")
	b.WriteString(session.Summary + "\n\n")

	b.WriteString(Header("Proposed tasks") + "\n")
	if len(session.Staged) == 0 {
		b.WriteString(Dim("No actionable items found.") + "\n")
	} else {
		rows := make([][]string, 0, len(session.Staged))
		for i, staged := range session.Staged {
			mark := Dim("skip")
			if staged.Selected {
				mark = StyleGreen.Render("keep")
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				mark,
				staged.Task.Description,
				staged.Task.Assignee,
				Priority(staged.Task.Priority),
				formatDeadline(staged.Task.Deadline),
			})
		}
		b.WriteString(RenderTable([]string{"#", "", "Task", "Assignee", "Priority", "Deadline"}, rows))
	}

	if len(session.Decisions) > 0 {
		b.WriteString("\n" + Header("Decisions") + "\n")
		for _, d := range session.Decisions {
			b.WriteString("  " + StylePurple.Render("•") + " " + d.Description + "\n")
		}
	}
	return b.String()
}

// FormatConfirmedTasks summarizes what a confirm actually wrote.
func FormatConfirmedTasks(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks confirmed.")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d task(s) created\n", StyleGreen.Render("✓"), len(tasks)))
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(shortID(t.ID)), t.Description, Dim("→ "+t.Assignee)))
	}
	return b.String()
}
