package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. A transaction is either a concrete
// entry (one-off, generated occurrence, or carry-over injection) or a
// recurring template (IsRecurringTemplate true, Frequency != none).
//
// TemplateID is set only on occurrences produced by the recurrence engine and
// points back at the template that generated them; it is empty on templates
// and on manually entered transactions.
type Transaction struct {
	TransactionID        string               `json:"transactionID"` // Primary Key (UUID)
	TemplateID           string               `json:"templateID"`    // Empty unless generated from a template
	Type                 TransactionType      `json:"type"`
	Amount               decimal.Decimal      `json:"amount"` // Positive magnitude
	Description          string               `json:"description"`
	Date                 time.Time            `json:"date"` // Day-granularity semantics, stored with full timestamp
	Frequency            TransactionFrequency `json:"frequency"`
	IsRecurringTemplate  bool                 `json:"isRecurringTemplate"`
	CategoryID           string               `json:"categoryID"`           // Optional
	SourceAccountID      string               `json:"sourceAccountID"`      // Optional
	DestinationAccountID string               `json:"destinationAccountID"` // Optional
	SavingGoalID         string               `json:"savingGoalID"`         // Optional
	AuditFields
}

// Validate checks the type-specific required-field rules and the positive
// amount rule. It returns the full list of human-readable messages; an empty
// slice means the transaction may be persisted.
func (t Transaction) Validate() []string {
	var errs []string

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than 0")
	}

	switch t.Type {
	case Income:
		if t.DestinationAccountID == "" {
			errs = append(errs, "destination account is required for income")
		}
		if t.CategoryID == "" {
			errs = append(errs, "category is required for income")
		}
		if t.SourceAccountID != "" {
			errs = append(errs, "income must not have a source account")
		}

	case Expense:
		if t.SourceAccountID == "" {
			errs = append(errs, "source account is required for expenses")
		}
		if t.CategoryID == "" {
			errs = append(errs, "category is required for expenses")
		}

	case Transfer:
		if t.SourceAccountID == "" || t.DestinationAccountID == "" {
			errs = append(errs, "source and destination accounts are required for transfers")
		} else if t.SourceAccountID == t.DestinationAccountID {
			errs = append(errs, "source and destination must be different accounts")
		}

	case SavingDeposit:
		if t.SourceAccountID == "" {
			errs = append(errs, "source account is required for saving deposits")
		}
		if t.SavingGoalID == "" {
			errs = append(errs, "saving goal is required for saving deposits")
		}

	case SavingWithdrawal:
		if t.DestinationAccountID == "" {
			errs = append(errs, "destination account is required for saving withdrawals")
		}
		if t.SavingGoalID == "" {
			errs = append(errs, "saving goal is required for saving withdrawals")
		}

	default:
		errs = append(errs, "unknown transaction type: "+string(t.Type))
	}

	return errs
}
