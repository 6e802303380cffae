package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
	"github.com/jongkwon0918/Clippy/internal/testutil"
)

func TestRegister_CreatesAndSignsIn(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.users, f.uow)
	ctx := context.Background()

	user, err := svc.Register(ctx, "kim", "Kim")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Len(t, user.InvitationCode, 6)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegister_RejectsBlankFields(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.users, f.uow)

	_, err := svc.Register(context.Background(), "", " ")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 2)
}

func TestLoginAndLogout(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.users, f.uow)
	ctx := context.Background()

	_, err := svc.Register(ctx, "kim", "Kim")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "lee", "Lee")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "kim")
	require.NoError(t, err)
	assert.Equal(t, "Kim", user.Name)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kim", current.Username)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Current(ctx)
	var nferr *domain.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestLogin_UnknownUsername(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.users, f.uow)

	_, err := svc.Login(context.Background(), "ghost")
	var nferr *domain.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestRename_PropagatesToEveryDenormalizedCopy(t *testing.T) {
	f := newFixture(t)
	profiles := NewProfileService(f.users, f.uow)
	teams := f.teamService()
	ctx := context.Background()

	kim, err := profiles.Register(ctx, "kim", "Kim")
	require.NoError(t, err)

	team, err := teams.CreateTeam(ctx, "Platform", kim)
	require.NoError(t, err)
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Kim's team job",
		testutil.WithTeam(team.ID), testutil.WithAssignee("Kim"))))
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Annotated",
		testutil.WithTeam(team.ID), testutil.WithAssignee("Kim (Admin)"))))
	// A longer name containing "Kim" as a substring must not be touched.
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Namesake",
		testutil.WithTeam(team.ID), testutil.WithAssignee("Kim Min-su"))))
	_, err = teams.AddAnnouncement(ctx, team.ID, "hello", kim)
	require.NoError(t, err)

	renamed, err := profiles.Rename(ctx, kim, "Kim2")
	require.NoError(t, err)
	assert.Equal(t, "Kim2", renamed.Name)

	stored, err := f.users.GetByUsername(ctx, "kim")
	require.NoError(t, err)
	assert.Equal(t, "Kim2", stored.Name)

	tasks, err := f.tasks.List(ctx, repository.TaskFilter{TeamID: team.ID})
	require.NoError(t, err)
	byDescription := map[string]string{}
	for _, task := range tasks {
		byDescription[task.Description] = task.Assignee
	}
	assert.Equal(t, "Kim2", byDescription["Kim's team job"])
	assert.Equal(t, "Kim2 (Admin)", byDescription["Annotated"])
	assert.Equal(t, "Kim Min-su", byDescription["Namesake"])

	roster, err := f.teams.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kim2 (Admin)"}, roster.Members)

	notices, err := f.announcements.ListByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "Kim2", notices[0].Author)
}

func TestRename_SameNameIsNoop(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.users, f.uow)
	ctx := context.Background()

	kim, err := svc.Register(ctx, "kim", "Kim")
	require.NoError(t, err)

	same, err := svc.Rename(ctx, kim, "Kim")
	require.NoError(t, err)
	assert.Equal(t, kim, same)
}

func TestRename_RollsBackTogether(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kim := testutil.NewTestUser("kim", "Kim")
	require.NoError(t, f.users.Create(ctx, kim))
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Job", testutil.WithAssignee("Kim"))))

	svc := NewProfileService(f.users, failingUoW{inner: f.uow})
	_, err := svc.Rename(ctx, kim, "Kim2")
	require.ErrorIs(t, err, errInjected)

	stored, err := f.users.GetByUsername(ctx, "kim")
	require.NoError(t, err)
	assert.Equal(t, "Kim", stored.Name)
	tasks, err := f.tasks.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Kim", tasks[0].Assignee)
}

func TestDeleteAccount_ClearsSession(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.users, f.uow)
	ctx := context.Background()

	kim, err := svc.Register(ctx, "kim", "Kim")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, kim))

	_, err = svc.Current(ctx)
	var nferr *domain.NotFoundError
	assert.ErrorAs(t, err, &nferr)
	_, err = f.users.GetByUsername(ctx, "kim")
	assert.ErrorAs(t, err, &nferr)
}

func TestDecisionService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewDecisionService(f.decisions)
	ctx := context.Background()

	require.NoError(t, f.decisions.Create(ctx, &domain.Decision{ID: "d1", Description: "Adopt Go"}))
	decisions, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "Adopt Go", decisions[0].Description)
}
