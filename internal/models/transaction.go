package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the domain transaction type for persistence.
type TransactionType string

// TransactionFrequency mirrors the domain recurrence frequency for persistence.
type TransactionFrequency string

// Transaction represents a ledger row: a one-off entry, a generated
// occurrence (template_id set) or a recurring template (is_recurring_template
// true). Optional references are stored as empty strings, the columns are
// NOT NULL with an empty default.
type Transaction struct {
	TransactionID        string               `db:"transaction_id"`
	TemplateID           string               `db:"template_id"`
	Type                 TransactionType      `db:"type"`
	Amount               decimal.Decimal      `db:"amount"`
	Description          string               `db:"description"`
	Date                 time.Time            `db:"date"`
	Frequency            TransactionFrequency `db:"frequency"`
	IsRecurringTemplate  bool                 `db:"is_recurring_template"`
	CategoryID           string               `db:"category_id"`
	SourceAccountID      string               `db:"source_account_id"`
	DestinationAccountID string               `db:"destination_account_id"`
	SavingGoalID         string               `db:"saving_goal_id"`
	AuditFields
}
