package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account within the core domain.
// The current balance is never stored; it is always derived from the
// initial balance plus the signed effects of the transaction ledger.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	IconName       string          `json:"iconName"` // Optional, empty means the type's default icon
	ColorHex       string          `json:"colorHex"` // Optional
	IsArchived     bool            `json:"isArchived"`
	IsDefault      bool            `json:"isDefault"` // At most one non-archived account is default
	AuditFields
}
