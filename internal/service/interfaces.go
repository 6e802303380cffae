package service

import (
	"context"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

// ReviewMode selects where confirmed tasks land.
type ReviewMode string

const (
	ModePersonal ReviewMode = "personal"
	ModeTeam     ReviewMode = "team"
)

// ReviewContext pins a review session to a destination. TeamID is set
// exactly when Mode is ModeTeam.
type ReviewContext struct {
	Mode   ReviewMode
	TeamID string
}

// StagedTask is one draft task inside a review session. The ID exists only
// for the lifetime of the session; confirmed tasks get fresh ids.
type StagedTask struct {
	ID       string
	Task     domain.DraftTask
	Selected bool
}

// ReviewSession holds a draft between analysis and the reviewer's confirm or
// cancel. It lives in memory only and is single-use: after Confirm or Cancel
// it accepts no further edits.
type ReviewSession struct {
	ID        string
	Summary   string
	Context   ReviewContext
	Staged    []*StagedTask
	Decisions []domain.Decision

	closed bool
}

type ReviewService interface {
	// Stage opens a session over a draft with every task pre-selected.
	Stage(draft *domain.DraftResult, rctx ReviewContext) (*ReviewSession, error)
	Select(session *ReviewSession, stagedID string) error
	Deselect(session *ReviewSession, stagedID string) error
	// Reassign edits a staged task's assignee without touching the draft.
	Reassign(session *ReviewSession, stagedID, assignee string) error
	// Confirm persists the selected tasks and the draft's decisions in one
	// transaction and closes the session. In personal mode every assignee
	// is overridden with the actor's name.
	Confirm(ctx context.Context, session *ReviewSession, actor *domain.User) ([]*domain.Task, error)
	// Cancel closes the session with no side effects.
	Cancel(session *ReviewSession)
}

type TaskService interface {
	// Toggle flips a task's completion state. Team tasks require the actor
	// to match the assignee; personal tasks are always allowed.
	Toggle(ctx context.Context, taskID string, actor *domain.User) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task, actor *domain.User) error
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, f repository.TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type TeamService interface {
	CreateTeam(ctx context.Context, name string, creator *domain.User) (*domain.Team, error)
	// DeleteTeam removes the team and everything scoped to it: roster,
	// team tasks and announcements, in one transaction. Creator only.
	DeleteTeam(ctx context.Context, teamID string, requester *domain.User) error
	// Join resolves an invitation code to a user and appends their plain
	// name to the roster. Joining a team you are already on is a no-op.
	Join(ctx context.Context, teamID, inviteCode string) (*domain.Team, error)
	// Leave removes the member's roster entries, the team's announcements,
	// and the team tasks assigned to the leaver. Teammates' tasks survive.
	Leave(ctx context.Context, teamID string, member *domain.User) error
	AddAnnouncement(ctx context.Context, teamID, content string, author *domain.User) (*domain.Announcement, error)
	Announcements(ctx context.Context, teamID string) ([]*domain.Announcement, error)
	Get(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}

type ProfileService interface {
	// Register creates a user with a fresh invitation code and signs them in.
	Register(ctx context.Context, username, name string) (*domain.User, error)
	Login(ctx context.Context, username string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
	// Rename updates the display name and rewrites every denormalized copy:
	// task assignees, team rosters and announcement authors.
	Rename(ctx context.Context, user *domain.User, newName string) (*domain.User, error)
	DeleteAccount(ctx context.Context, user *domain.User) error
}

type DecisionService interface {
	List(ctx context.Context) ([]*domain.Decision, error)
}
