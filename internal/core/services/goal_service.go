package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// savingGoalService implements SavingGoalSvcFacade, including the goal
// reconciler that owns the cached CurrentAmount field.
type savingGoalService struct {
	BaseService
	goalRepo portsrepo.SavingGoalRepositoryFacade
	txnRepo  portsrepo.TransactionReader
}

// NewSavingGoalService creates a new saving goal service.
func NewSavingGoalService(goalRepo portsrepo.SavingGoalRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.SavingGoalSvcFacade {
	return &savingGoalService{
		goalRepo: goalRepo,
		txnRepo:  txnRepo,
	}
}

// Ensure savingGoalService implements the SavingGoalSvcFacade interface
var _ portssvc.SavingGoalSvcFacade = (*savingGoalService)(nil)

// RecalculateAll recomputes every goal's accumulated amount from the ledger.
// This is a full recompute, not an incremental update, so repeating it is
// always safe.
func (s *savingGoalService) RecalculateAll(ctx context.Context) error {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to list goals for reconciliation: %w", err)
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions for reconciliation: %w", err)
	}

	now := time.Now().UTC()
	for _, goal := range goals {
		recomputed := finance.GoalAmount(goal, transactions)
		if recomputed.Equal(goal.CurrentAmount) {
			continue
		}
		if err := s.goalRepo.UpdateGoalCurrentAmount(ctx, goal.GoalID, recomputed, now); err != nil {
			return fmt.Errorf("failed to update accumulated amount for goal %s: %w", goal.GoalID, err)
		}
		s.LogDebug(ctx, "Reconciled saving goal",
			slog.String("goal_id", goal.GoalID),
			slog.String("amount", recomputed.String()))
	}

	return nil
}

func (s *savingGoalService) GetGoalByID(ctx context.Context, goalID string) (*domain.SavingGoal, error) {
	return s.goalRepo.FindGoalByID(ctx, goalID)
}

func (s *savingGoalService) ListGoals(ctx context.Context) ([]domain.SavingGoal, error) {
	return s.goalRepo.ListGoals(ctx)
}

func (s *savingGoalService) CreateGoal(ctx context.Context, req dto.CreateSavingGoalRequest) (*domain.SavingGoal, error) {
	now := time.Now().UTC()
	goal := domain.SavingGoal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		GoalAmount:    req.GoalAmount,
		CurrentAmount: decimal.Zero,
		IconName:      req.IconName,
		ColorHex:      req.ColorHex,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save saving goal", slog.String("goal_name", req.Name))
		return nil, fmt.Errorf("failed to save saving goal: %w", err)
	}

	s.LogInfo(ctx, "Saving goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *savingGoalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateSavingGoalRequest) (*domain.SavingGoal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.GoalAmount != nil {
		goal.GoalAmount = *req.GoalAmount
	}
	if req.IconName != nil {
		goal.IconName = *req.IconName
	}
	if req.ColorHex != nil {
		goal.ColorHex = *req.ColorHex
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.IsArchived != nil {
		goal.IsArchived = *req.IsArchived
	}
	goal.LastUpdatedAt = time.Now().UTC()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update saving goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update saving goal: %w", err)
	}

	return goal, nil
}

func (s *savingGoalService) DeleteGoal(ctx context.Context, goalID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete saving goal", slog.String("goal_id", goalID))
		return err
	}
	s.LogInfo(ctx, "Saving goal deleted", slog.String("goal_id", goalID))
	return nil
}
