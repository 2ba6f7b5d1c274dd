package dto

import (
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// NetWorthResponse defines the data returned for a net worth query.
type NetWorthResponse struct {
	NetWorth decimal.Decimal `json:"netWorth"`
}

// TotalsResponse carries the income/expense totals of one period.
type TotalsResponse struct {
	Period  domain.PeriodType `json:"period"`
	Income  decimal.Decimal   `json:"income"`
	Expense decimal.Decimal   `json:"expense"`
	Net     decimal.Decimal   `json:"net"`
}

// PeriodSummaryResponse is one bucket of a period breakdown.
type PeriodSummaryResponse struct {
	Key     int             `json:"key"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// ToListPeriodSummaryResponse converts domain summaries to DTOs.
func ToListPeriodSummaryResponse(summaries []domain.PeriodSummary) []PeriodSummaryResponse {
	res := make([]PeriodSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = PeriodSummaryResponse{
			Key:     s.Key,
			Label:   s.Label,
			Income:  s.Income,
			Expense: s.Expense,
			Net:     s.Net,
		}
	}
	return res
}

// EngineRunResponse reports the outcome of a manual engine trigger.
type EngineRunResponse struct {
	Ran     bool `json:"ran"`
	Created int  `json:"created"`
}
