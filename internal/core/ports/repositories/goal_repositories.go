package repositories

import (
	"context"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavingGoalReader defines read operations for saving goal data
type SavingGoalReader interface {
	// FindGoalByID retrieves a specific saving goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.SavingGoal, error)

	// ListGoals retrieves every saving goal, archived ones included.
	ListGoals(ctx context.Context) ([]domain.SavingGoal, error)
}

// SavingGoalWriter defines write operations for saving goal data
type SavingGoalWriter interface {
	// SaveGoal persists a new saving goal.
	SaveGoal(ctx context.Context, goal domain.SavingGoal) error

	// UpdateGoal updates an existing saving goal's details.
	UpdateGoal(ctx context.Context, goal domain.SavingGoal) error

	// UpdateGoalCurrentAmount writes the reconciler's recomputed accumulated
	// amount for a goal. This is the only path that mutates CurrentAmount.
	UpdateGoalCurrentAmount(ctx context.Context, goalID string, amount decimal.Decimal, now time.Time) error

	// DeleteGoal removes a saving goal permanently.
	DeleteGoal(ctx context.Context, goalID string) error
}

// SavingGoalRepositoryFacade combines all saving-goal-related repository interfaces
type SavingGoalRepositoryFacade interface {
	SavingGoalReader
	SavingGoalWriter
}
