package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

type reviewService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewReviewService(uow db.UnitOfWork, observers ...UseCaseObserver) ReviewService {
	return &reviewService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *reviewService) Stage(draft *domain.DraftResult, rctx ReviewContext) (*ReviewSession, error) {
	if draft == nil {
		return nil, fmt.Errorf("no draft to stage")
	}
	switch rctx.Mode {
	case ModePersonal:
		if rctx.TeamID != "" {
			return nil, fmt.Errorf("personal review must not carry a team id")
		}
	case ModeTeam:
		if rctx.TeamID == "" {
			return nil, fmt.Errorf("team review requires a team id")
		}
	default:
		return nil, fmt.Errorf("invalid review mode %q", rctx.Mode)
	}

	session := &ReviewSession{
		ID:        uuid.New().String(),
		Summary:   draft.Summary,
		Context:   rctx,
		Staged:    make([]*StagedTask, 0, len(draft.Tasks)),
		Decisions: make([]domain.Decision, len(draft.Decisions)),
	}
	// Staged tasks are copies; edits during review never touch the draft.
	for _, t := range draft.Tasks {
		session.Staged = append(session.Staged, &StagedTask{
			ID:       uuid.New().String(),
			Task:     t,
			Selected: true,
		})
	}
	copy(session.Decisions, draft.Decisions)
	return session, nil
}

func (s *reviewService) Select(session *ReviewSession, stagedID string) error {
	return s.setSelected(session, stagedID, true)
}

func (s *reviewService) Deselect(session *ReviewSession, stagedID string) error {
	return s.setSelected(session, stagedID, false)
}

func (s *reviewService) setSelected(session *ReviewSession, stagedID string, selected bool) error {
	staged, err := findStaged(session, stagedID)
	if err != nil {
		return err
	}
	staged.Selected = selected
	return nil
}

func (s *reviewService) Reassign(session *ReviewSession, stagedID, assignee string) error {
	if assignee == "" {
		return &domain.ValidationError{Issues: []string{"assignee must not be empty"}}
	}
	staged, err := findStaged(session, stagedID)
	if err != nil {
		return err
	}
	staged.Task.Assignee = assignee
	return nil
}

func (s *reviewService) Confirm(ctx context.Context, session *ReviewSession, actor *domain.User) (tasks []*domain.Task, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "review_confirm", started, err, map[string]any{
			"mode":      string(session.Context.Mode),
			"confirmed": len(tasks),
		})
	}()

	if err = checkOpen(session); err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, fmt.Errorf("confirm requires a signed-in user")
	}

	tasks = make([]*domain.Task, 0, len(session.Staged))
	for _, staged := range session.Staged {
		if !staged.Selected {
			continue
		}
		task := &domain.Task{
			ID:             uuid.New().String(),
			Description:    staged.Task.Description,
			Assignee:       staged.Task.Assignee,
			Priority:       staged.Task.Priority,
			Department:     staged.Task.Department,
			Deadline:       staged.Task.Deadline,
			Completed:      false,
			Source:         domain.TaskSource(session.Context.Mode),
			TeamID:         session.Context.TeamID,
			RelatedSummary: session.Summary,
		}
		// A personal confirm files everything under the actor, whatever
		// the analyzer or reviewer wrote in the assignee field.
		if session.Context.Mode == ModePersonal {
			task.Assignee = actor.Name
		}
		if err = task.Validate(); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	decisions := make([]*domain.Decision, 0, len(session.Decisions))
	for _, d := range session.Decisions {
		decisions = append(decisions, &domain.Decision{
			ID:          uuid.New().String(),
			Description: d.Description,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txDecisions := repository.NewSQLiteDecisionRepo(tx)
		for _, t := range tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return err
			}
		}
		for _, d := range decisions {
			if err := txDecisions.Create(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	session.closed = true
	return tasks, nil
}

func (s *reviewService) Cancel(session *ReviewSession) {
	if session != nil {
		session.closed = true
	}
}

func findStaged(session *ReviewSession, stagedID string) (*StagedTask, error) {
	if err := checkOpen(session); err != nil {
		return nil, err
	}
	for _, staged := range session.Staged {
		if staged.ID == stagedID {
			return staged, nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "staged task", Key: stagedID}
}

func checkOpen(session *ReviewSession) error {
	if session == nil {
		return fmt.Errorf("no review session")
	}
	if session.closed {
		return fmt.Errorf("review session already closed")
	}
	return nil
}
