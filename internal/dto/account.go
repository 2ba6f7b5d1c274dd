package dto

import (
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=checking savings cash other"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	IconName       string             `json:"iconName"`
	ColorHex       string             `json:"colorHex"`
	IsDefault      bool               `json:"isDefault"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name      *string `json:"name"`
	IconName  *string `json:"iconName"`
	ColorHex  *string `json:"colorHex"`
	IsDefault *bool   `json:"isDefault"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	IconName       string             `json:"iconName"`
	ColorHex       string             `json:"colorHex"`
	IsArchived     bool               `json:"isArchived"`
	IsDefault      bool               `json:"isDefault"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		InitialBalance: acc.InitialBalance,
		IconName:       acc.IconName,
		ColorHex:       acc.ColorHex,
		IsArchived:     acc.IsArchived,
		IsDefault:      acc.IsDefault,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
