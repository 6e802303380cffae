package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotice(teamID, content, author, date string) *domain.Announcement {
	return &domain.Announcement{
		ID:        uuid.New().String(),
		TeamID:    teamID,
		Content:   content,
		CreatedAt: date,
		Author:    author,
	}
}

func TestAnnouncementRepo_ListNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnnouncementRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newNotice("team-a", "old", "Kim", "2026-08-01")))
	require.NoError(t, repo.Create(ctx, newNotice("team-a", "new", "Kim", "2026-09-01")))
	require.NoError(t, repo.Create(ctx, newNotice("team-b", "other", "Lee", "2026-09-01")))

	notices, err := repo.ListByTeam(ctx, "team-a")
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "new", notices[0].Content)
	assert.Equal(t, "old", notices[1].Content)
}

func TestAnnouncementRepo_DeleteByTeam(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnnouncementRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newNotice("team-a", "a", "Kim", "2026-09-01")))
	require.NoError(t, repo.Create(ctx, newNotice("team-b", "b", "Lee", "2026-09-01")))

	require.NoError(t, repo.DeleteByTeam(ctx, "team-a"))

	gone, err := repo.ListByTeam(ctx, "team-a")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.ListByTeam(ctx, "team-b")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestAnnouncementRepo_ReplaceAuthor_ExactOnly(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnnouncementRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newNotice("team-a", "mine", "Kim", "2026-09-01")))
	require.NoError(t, repo.Create(ctx, newNotice("team-a", "not mine", "Kim Min-su", "2026-09-01")))

	require.NoError(t, repo.ReplaceAuthor(ctx, "Kim", "Kim2"))

	notices, err := repo.ListByTeam(ctx, "team-a")
	require.NoError(t, err)
	authors := []string{notices[0].Author, notices[1].Author}
	assert.Contains(t, authors, "Kim2")
	assert.Contains(t, authors, "Kim Min-su")
}

func TestDecisionRepo_AppendOnly(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDecisionRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Decision{ID: "d1", Description: "Adopt trunk-based development"}))
	require.NoError(t, repo.Create(ctx, &domain.Decision{ID: "d2", Description: "Freeze scope for v1"}))

	decisions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, "d1", decisions[0].ID)
	assert.Equal(t, "d2", decisions[1].ID)
}
