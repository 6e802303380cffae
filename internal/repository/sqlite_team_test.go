package repository

import (
	"context"
	"testing"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepo_CreateAndGet_PreservesMemberOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	team := testutil.NewTestTeam("Platform", kim)
	require.NoError(t, repo.Create(ctx, team))
	require.NoError(t, repo.AddMember(ctx, team.ID, "Lee"))
	require.NoError(t, repo.AddMember(ctx, team.ID, "Park"))

	got, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kim (Admin)", "Lee", "Park"}, got.Members)
	assert.Equal(t, kim.ID, got.CreatedBy)
}

func TestTeamRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestTeamRepo_RemoveMember_PlainAndAnnotated(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	team := testutil.NewTestTeam("Platform", kim)
	require.NoError(t, repo.Create(ctx, team))
	require.NoError(t, repo.AddMember(ctx, team.ID, "Lee"))

	// A member cannot half-leave: both forms of the entry go at once.
	require.NoError(t, repo.RemoveMember(ctx, team.ID, "Kim"))

	got, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lee"}, got.Members)
}

func TestTeamRepo_RemoveMember_DoesNotSubstringMatch(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	team := testutil.NewTestTeam("Platform", kim)
	require.NoError(t, repo.Create(ctx, team))
	require.NoError(t, repo.AddMember(ctx, team.ID, "Kim Min-su"))

	require.NoError(t, repo.RemoveMember(ctx, team.ID, "Kim"))

	got, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kim Min-su"}, got.Members)
}

func TestTeamRepo_RenameMember(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	teamA := testutil.NewTestTeam("A", kim)
	require.NoError(t, repo.Create(ctx, teamA))
	teamB := &domain.Team{ID: "team-b", Name: "B", Members: []string{"Lee (Admin)", "Kim"}, CreatedBy: "lee-id"}
	require.NoError(t, repo.Create(ctx, teamB))

	require.NoError(t, repo.RenameMember(ctx, "Kim", "Kim2"))

	gotA, err := repo.GetByID(ctx, teamA.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kim2 (Admin)"}, gotA.Members)

	gotB, err := repo.GetByID(ctx, teamB.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lee (Admin)", "Kim2"}, gotB.Members)
}

func TestTeamRepo_Delete_RemovesRoster(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	team := testutil.NewTestTeam("Platform", kim)
	require.NoError(t, repo.Create(ctx, team))

	require.NoError(t, repo.Delete(ctx, team.ID))

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM team_members WHERE team_id = ?`, team.ID).Scan(&count))
	assert.Zero(t, count, "roster rows cascade with the team row")
}

func TestTeamRepo_List(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	require.NoError(t, repo.Create(ctx, testutil.NewTestTeam("A", kim)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTeam("B", kim)))

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
	for _, team := range teams {
		assert.NotEmpty(t, team.Members)
	}
}
