package testutil

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jongkwon0918/Clippy/internal/domain"
)

// Task options

type TaskOption func(*domain.Task)

func WithAssignee(name string) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = name
	}
}

func WithTeam(teamID string) TaskOption {
	return func(t *domain.Task) {
		t.Source = domain.SourceTeam
		t.TeamID = teamID
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithDeadline(deadline string) TaskOption {
	return func(t *domain.Task) {
		t.Deadline = deadline
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithSummary(summary string) TaskOption {
	return func(t *domain.Task) {
		t.RelatedSummary = summary
	}
}

// NewTestTask builds a valid personal task with the given description,
// modified by any options.
func NewTestTask(description string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:          uuid.New().String(),
		Description: description,
		Assignee:    "Kim",
		Priority:    domain.PriorityMedium,
		Department:  "Engineering",
		Deadline:    domain.NoDeadline,
		Source:      domain.SourcePersonal,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestUser builds a user with a deterministic username-derived name and a
// fresh invitation code.
func NewTestUser(username, name string) *domain.User {
	return &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		Name:           name,
		InvitationCode: strings.ToUpper(uuid.New().String()[:6]),
	}
}

// NewTestTeam builds a team created by the given user, with the creator's
// admin-annotated entry as the sole member.
func NewTestTeam(name string, creator *domain.User) *domain.Team {
	return &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		Members:   []string{domain.WithAdminTag(creator.Name)},
		CreatedBy: creator.ID,
	}
}

// NewTestDraft builds a draft result with the given summary and tasks.
func NewTestDraft(summary string, tasks ...domain.DraftTask) *domain.DraftResult {
	return &domain.DraftResult{
		Summary: summary,
		Tasks:   tasks,
		Decisions: []domain.Decision{
			{Description: "Ship the beta next sprint"},
		},
	}
}

// NewDraftTask builds a single analyzer-style draft task.
func NewDraftTask(description, assignee string) domain.DraftTask {
	return domain.DraftTask{
		Description: description,
		Assignee:    assignee,
		Priority:    domain.PriorityMedium,
		Department:  "Engineering",
		Deadline:    domain.NoDeadline,
	}
}
