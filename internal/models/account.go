package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors the domain account type for persistence.
type AccountType string

// Account represents a financial account row. The current balance is never
// persisted; only the initial balance is stored and the rest is derived from
// the transactions table.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	AccountType    AccountType     `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	IconName       string          `db:"icon_name"`
	ColorHex       string          `db:"color_hex"`
	IsArchived     bool            `db:"is_archived"`
	IsDefault      bool            `db:"is_default"`
	AuditFields
}
