package services

import (
	"context"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
)

// TransactionSvcFacade defines operations for ledger transactions. Every
// mutating operation triggers a goal reconciliation before returning.
type TransactionSvcFacade interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the whole ledger.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// CreateTransaction validates and persists a new transaction or template.
	// Validation failures are returned wrapped in apperrors.ErrValidation and
	// the record is never persisted.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction validates and updates an existing transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
