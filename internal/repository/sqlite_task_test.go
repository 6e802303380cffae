package repository

import (
	"context"
	"testing"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Write minutes",
		testutil.WithDeadline("2026-09-15 18:30"),
		testutil.WithSummary("Weekly sync"))
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
	assert.Equal(t, "2026-09-15 18:30", got.Deadline, "deadline string shape survives storage")
}

func TestTaskRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "task", nf.Kind)
}

func TestTaskRepo_ListFilters(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	personal := testutil.NewTestTask("Personal item")
	teamA := testutil.NewTestTask("Team A item", testutil.WithTeam("team-a"))
	teamADone := testutil.NewTestTask("Team A done", testutil.WithTeam("team-a"), testutil.WithCompleted())
	teamB := testutil.NewTestTask("Team B item", testutil.WithTeam("team-b"), testutil.WithAssignee("Lee"))
	for _, task := range []*domain.Task{personal, teamA, teamADone, teamB} {
		require.NoError(t, repo.Create(ctx, task))
	}

	all, err := repo.List(ctx, TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byTeam, err := repo.List(ctx, TaskFilter{TeamID: "team-a"})
	require.NoError(t, err)
	assert.Len(t, byTeam, 2)

	done := true
	completed, err := repo.List(ctx, TaskFilter{TeamID: "team-a", Completed: &done})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, teamADone.ID, completed[0].ID)

	bySource, err := repo.List(ctx, TaskFilter{Source: domain.SourcePersonal})
	require.NoError(t, err)
	require.Len(t, bySource, 1)
	assert.Equal(t, personal.ID, bySource[0].ID)

	byAssignee, err := repo.List(ctx, TaskFilter{Assignee: "Lee"})
	require.NoError(t, err)
	require.Len(t, byAssignee, 1)
	assert.Equal(t, teamB.ID, byAssignee[0].ID)
}

func TestTaskRepo_SetCompleted_PatchesOnlyCompletion(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Toggle me", testutil.WithDeadline("2026-09-10"))
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.SetCompleted(ctx, task.ID, true))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, task.Description, got.Description)
	assert.Equal(t, task.Deadline, got.Deadline)
}

func TestTaskRepo_SetCompleted_Missing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	err := repo.SetCompleted(context.Background(), "nope", true)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestTaskRepo_DeleteByTeam(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("a", testutil.WithTeam("team-a"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("b", testutil.WithTeam("team-a"))))
	keep := testutil.NewTestTask("c", testutil.WithTeam("team-b"))
	require.NoError(t, repo.Create(ctx, keep))

	require.NoError(t, repo.DeleteByTeam(ctx, "team-a"))

	remaining, err := repo.List(ctx, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}

func TestTaskRepo_ReplaceAssignee_ExactAndAnnotated(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	plain := testutil.NewTestTask("plain", testutil.WithAssignee("Kim"))
	tagged := testutil.NewTestTask("tagged", testutil.WithAssignee("Kim (Admin)"))
	collision := testutil.NewTestTask("collision", testutil.WithAssignee("Kim Min-su"))
	for _, task := range []*domain.Task{plain, tagged, collision} {
		require.NoError(t, repo.Create(ctx, task))
	}

	require.NoError(t, repo.ReplaceAssignee(ctx, "Kim", "Kim2"))

	got, _ := repo.GetByID(ctx, plain.ID)
	assert.Equal(t, "Kim2", got.Assignee)
	got, _ = repo.GetByID(ctx, tagged.ID)
	assert.Equal(t, "Kim2 (Admin)", got.Assignee)
	got, _ = repo.GetByID(ctx, collision.ID)
	assert.Equal(t, "Kim Min-su", got.Assignee, "substring matches must not be rewritten")
}

func TestTaskRepo_Update_WholeRecord(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("before")
	require.NoError(t, repo.Create(ctx, task))

	task.Description = "after"
	task.Priority = domain.PriorityHigh
	task.Deadline = "2026-10-01"
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Description)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "2026-10-01", got.Deadline)
}
