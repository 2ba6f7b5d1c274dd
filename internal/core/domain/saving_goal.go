package domain

import (
	"github.com/shopspring/decimal"
)

// SavingGoal represents a savings target the user deposits into and
// withdraws from via savingDeposit / savingWithdrawal transactions.
//
// CurrentAmount is a cached derived value owned by the goal reconciler:
// it is recomputed from the ledger after every mutating operation and must
// never be edited directly. Reading it between a mutation and the next
// reconciliation may return a stale value.
type SavingGoal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	GoalAmount    decimal.Decimal `json:"goalAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	IconName      string          `json:"iconName"` // Optional
	ColorHex      string          `json:"colorHex"` // Optional
	Description   string          `json:"description"`
	IsArchived    bool            `json:"isArchived"`
	AuditFields
}
