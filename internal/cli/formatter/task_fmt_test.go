package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jongkwon0918/Clippy/internal/domain"
)

func TestFormatTaskList_AlignsColumns(t *testing.T) {
	out := FormatTaskList([]*domain.Task{
		{
			ID: "aaaaaaaa-1111", Description: "Write the quarterly report",
			Assignee: "Kim", Priority: domain.PriorityHigh,
			Deadline: "2025-06-01", Source: domain.SourcePersonal,
		},
		{
			ID: "bbbbbbbb-2222", Description: "Deploy", Assignee: "Lee",
			Priority: domain.PriorityLow, Deadline: domain.NoDeadline,
			Source: domain.SourceTeam, TeamID: "cccccccc-3333",
			Completed: true,
		},
	})

	assert.Contains(t, out, "Write the quarterly report")
	assert.Contains(t, out, "aaaaaaaa")
	assert.NotContains(t, out, "aaaaaaaa-1111")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "team cccccccc")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}

func TestFormatTaskDetail_ShowsSummaryWhenPresent(t *testing.T) {
	task := &domain.Task{
		ID: "aaaaaaaa-1111", Description: "Write report", Assignee: "Kim",
		Priority: domain.PriorityMedium, Department: "Docs",
		Deadline: "2025-06-01 09:00", Source: domain.SourcePersonal,
		RelatedSummary: "Planning meeting about Q2",
	}
	out := FormatTaskDetail(task)
	assert.Contains(t, out, "From meeting:")
	assert.Contains(t, out, "Planning meeting about Q2")

	task.RelatedSummary = ""
	assert.NotContains(t, FormatTaskDetail(task), "From meeting:")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
