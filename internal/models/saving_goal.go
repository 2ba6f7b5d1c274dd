package models

import (
	"github.com/shopspring/decimal"
)

// SavingGoal represents a saving goal row. CurrentAmount is the reconciler's
// cached derived value, persisted so list endpoints avoid a full ledger scan.
type SavingGoal struct {
	GoalID        string          `db:"goal_id"`
	Name          string          `db:"name"`
	GoalAmount    decimal.Decimal `db:"goal_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	IconName      string          `db:"icon_name"`
	ColorHex      string          `db:"color_hex"`
	Description   string          `db:"description"`
	IsArchived    bool            `db:"is_archived"`
	AuditFields
}
