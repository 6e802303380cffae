package service

import (
	"context"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

// Decisions are written only by ReviewService.Confirm; this service is the
// read path. They are never edited and outlive the teams they came from.
type decisionService struct {
	decisions repository.DecisionRepo
}

func NewDecisionService(decisions repository.DecisionRepo) DecisionService {
	return &decisionService{decisions: decisions}
}

func (s *decisionService) List(ctx context.Context) ([]*domain.Decision, error) {
	return s.decisions.List(ctx)
}
