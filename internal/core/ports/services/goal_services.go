package services

import (
	"context"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
)

// GoalReconcilerSvc recomputes the cached accumulated amount of every saving
// goal from the ledger. It runs after every transaction mutation and after
// each recurrence run, and is idempotent.
type GoalReconcilerSvc interface {
	RecalculateAll(ctx context.Context) error
}

// SavingGoalSvcFacade defines operations for saving goal data
type SavingGoalSvcFacade interface {
	GoalReconcilerSvc

	// GetGoalByID retrieves a specific saving goal by its unique identifier.
	GetGoalByID(ctx context.Context, goalID string) (*domain.SavingGoal, error)

	// ListGoals retrieves every saving goal.
	ListGoals(ctx context.Context) ([]domain.SavingGoal, error)

	// CreateGoal persists a new saving goal.
	CreateGoal(ctx context.Context, req dto.CreateSavingGoalRequest) (*domain.SavingGoal, error)

	// UpdateGoal updates an existing saving goal's details.
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateSavingGoalRequest) (*domain.SavingGoal, error)

	// DeleteGoal removes a saving goal permanently.
	DeleteGoal(ctx context.Context, goalID string) error
}
