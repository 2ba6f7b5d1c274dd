package dto

import (
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction
// or a recurring template. Validation beyond field presence happens in the
// service via domain.Transaction.Validate.
type CreateTransactionRequest struct {
	Type                 domain.TransactionType      `json:"type" binding:"required,oneof=income expense transfer savingDeposit savingWithdrawal"`
	Amount               decimal.Decimal             `json:"amount" binding:"required"`
	Description          string                      `json:"description"`
	Date                 time.Time                   `json:"date" binding:"required"`
	Frequency            domain.TransactionFrequency `json:"frequency" binding:"omitempty,oneof=none weekly monthly quarterly fourMonthly sixMonthly yearly"`
	IsRecurringTemplate  bool                        `json:"isRecurringTemplate"`
	CategoryID           string                      `json:"categoryID"`
	SourceAccountID      string                      `json:"sourceAccountID"`
	DestinationAccountID string                      `json:"destinationAccountID"`
	SavingGoalID         string                      `json:"savingGoalID"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	Amount               *decimal.Decimal             `json:"amount"`
	Description          *string                      `json:"description"`
	Date                 *time.Time                   `json:"date"`
	Frequency            *domain.TransactionFrequency `json:"frequency"`
	CategoryID           *string                      `json:"categoryID"`
	SourceAccountID      *string                      `json:"sourceAccountID"`
	DestinationAccountID *string                      `json:"destinationAccountID"`
	SavingGoalID         *string                      `json:"savingGoalID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string                      `json:"transactionID"`
	TemplateID           string                      `json:"templateID,omitempty"`
	Type                 domain.TransactionType      `json:"type"`
	Amount               decimal.Decimal             `json:"amount"`
	Description          string                      `json:"description"`
	Date                 time.Time                   `json:"date"`
	Frequency            domain.TransactionFrequency `json:"frequency"`
	IsRecurringTemplate  bool                        `json:"isRecurringTemplate"`
	CategoryID           string                      `json:"categoryID,omitempty"`
	SourceAccountID      string                      `json:"sourceAccountID,omitempty"`
	DestinationAccountID string                      `json:"destinationAccountID,omitempty"`
	SavingGoalID         string                      `json:"savingGoalID,omitempty"`
	CreatedAt            time.Time                   `json:"createdAt"`
	LastUpdatedAt        time.Time                   `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		TemplateID:           txn.TemplateID,
		Type:                 txn.Type,
		Amount:               txn.Amount,
		Description:          txn.Description,
		Date:                 txn.Date,
		Frequency:            txn.Frequency,
		IsRecurringTemplate:  txn.IsRecurringTemplate,
		CategoryID:           txn.CategoryID,
		SourceAccountID:      txn.SourceAccountID,
		DestinationAccountID: txn.DestinationAccountID,
		SavingGoalID:         txn.SavingGoalID,
		CreatedAt:            txn.CreatedAt,
		LastUpdatedAt:        txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
