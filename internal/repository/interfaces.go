package repository

import (
	"context"

	"github.com/jongkwon0918/Clippy/internal/domain"
)

// TaskFilter narrows List results. Zero values mean "no constraint".
type TaskFilter struct {
	Source    domain.TaskSource
	TeamID    string
	Assignee  string // exact match
	Completed *bool
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, f TaskFilter) ([]*domain.Task, error)
	// Update is a whole-record write of every task field.
	Update(ctx context.Context, t *domain.Task) error
	// SetCompleted patches only the completed field, leaving concurrent
	// edits to other fields untouched (field-level last-write-wins).
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
	DeleteByTeam(ctx context.Context, teamID string) error
	// ReplaceAssignee rewrites tasks whose assignee exactly equals oldName
	// or its admin-annotated form. Substring occurrences are left alone.
	ReplaceAssignee(ctx context.Context, oldName, newName string) error
}

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Delete(ctx context.Context, id string) error
	// AddMember appends an entry at the end of the roster.
	AddMember(ctx context.Context, teamID, entry string) error
	// RemoveMember removes entries equal to name or its admin-annotated form.
	RemoveMember(ctx context.Context, teamID, name string) error
	// RenameMember rewrites exact and admin-annotated entries across all teams.
	RenameMember(ctx context.Context, oldName, newName string) error
}

type AnnouncementRepo interface {
	Create(ctx context.Context, a *domain.Announcement) error
	ListByTeam(ctx context.Context, teamID string) ([]*domain.Announcement, error)
	DeleteByTeam(ctx context.Context, teamID string) error
	ReplaceAuthor(ctx context.Context, oldName, newName string) error
}

type DecisionRepo interface {
	Create(ctx context.Context, d *domain.Decision) error
	List(ctx context.Context) ([]*domain.Decision, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByInviteCode(ctx context.Context, code string) (*domain.User, error)
	UpdateName(ctx context.Context, id, newName string) error
	Delete(ctx context.Context, id string) error
	// SetCurrent and Current manage the single local session row.
	SetCurrent(ctx context.Context, id string) error
	ClearCurrent(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
}
