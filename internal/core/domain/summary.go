package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodSummary is one bucket of a period breakdown (one month, one ISO week,
// or one year). Key is the sortable numeric bucket key; Label is the
// human-readable form derived from it.
type PeriodSummary struct {
	Key     int             `json:"key"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"` // Income minus Expense
}
