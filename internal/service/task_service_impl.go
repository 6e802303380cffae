package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Toggle(ctx context.Context, taskID string, actor *domain.User) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Source == domain.SourceTeam {
		var actorName string
		if actor != nil {
			actorName = actor.Name
		}
		if !domain.AssigneeMatches(task.Assignee, actorName) {
			return nil, &domain.PermissionError{
				Op:         fmt.Sprintf("toggle task %q", task.Description),
				Authorized: task.Assignee,
			}
		}
	}

	// One field-level patch; concurrent edits to other fields are untouched.
	if err := s.tasks.SetCompleted(ctx, taskID, !task.Completed); err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	return task, nil
}

func (s *taskService) Create(ctx context.Context, t *domain.Task, actor *domain.User) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Assignee == "" && actor != nil {
		t.Assignee = actor.Name
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Department == "" {
		t.Department = "General"
	}
	if t.Deadline == "" {
		t.Deadline = domain.NoDeadline
	}
	if t.Source == "" {
		t.Source = domain.SourcePersonal
	}
	if err := t.Validate(); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, f repository.TaskFilter) ([]*domain.Task, error) {
	return s.tasks.List(ctx, f)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
