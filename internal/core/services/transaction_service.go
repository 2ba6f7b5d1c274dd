package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements TransactionSvcFacade. Every mutation runs
// the goal reconciler before returning so the cached goal amounts never lag
// behind the ledger for longer than a single operation.
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	reconciler portssvc.GoalReconcilerSvc
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, reconciler portssvc.GoalReconcilerSvc) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		reconciler: reconciler,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	frequency := req.Frequency
	if frequency == "" {
		frequency = domain.FrequencyNone
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Type:                 req.Type,
		Amount:               req.Amount,
		Description:          req.Description,
		Date:                 req.Date,
		Frequency:            frequency,
		IsRecurringTemplate:  req.IsRecurringTemplate,
		CategoryID:           req.CategoryID,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		SavingGoalID:         req.SavingGoalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if msgs := txn.Validate(); len(msgs) > 0 {
		s.LogDebug(ctx, "Transaction failed validation", slog.String("reasons", strings.Join(msgs, "; ")))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("type", string(txn.Type)))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := s.reconciler.RecalculateAll(ctx); err != nil {
		return nil, fmt.Errorf("transaction saved but goal reconciliation failed: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Frequency != nil {
		txn.Frequency = *req.Frequency
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.SourceAccountID != nil {
		txn.SourceAccountID = *req.SourceAccountID
	}
	if req.DestinationAccountID != nil {
		txn.DestinationAccountID = *req.DestinationAccountID
	}
	if req.SavingGoalID != nil {
		txn.SavingGoalID = *req.SavingGoalID
	}
	txn.LastUpdatedAt = time.Now().UTC()

	if msgs := txn.Validate(); len(msgs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := s.reconciler.RecalculateAll(ctx); err != nil {
		return nil, fmt.Errorf("transaction updated but goal reconciliation failed: %w", err)
	}

	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	if err := s.reconciler.RecalculateAll(ctx); err != nil {
		return fmt.Errorf("transaction deleted but goal reconciliation failed: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
