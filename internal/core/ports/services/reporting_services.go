package services

import (
	"context"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade exposes the derived numbers the presentation layer
// renders: balances, net worth, period filters and summaries. All operations
// are pure computations over a snapshot fetched from the ledger store.
type ReportingSvcFacade interface {
	// GetAccountBalance derives one account's balance from its initial
	// balance plus the signed effects of the whole ledger.
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// GetNetWorth sums the balances of all non-archived accounts.
	GetNetWorth(ctx context.Context) (decimal.Decimal, error)

	// GetPeriodTransactions returns the transactions in the same calendar
	// week/month/year as referenceDate, newest first.
	GetPeriodTransactions(ctx context.Context, period domain.PeriodType, referenceDate time.Time) ([]domain.Transaction, error)

	// GetTotals sums income and expense within the period containing
	// referenceDate.
	GetTotals(ctx context.Context, period domain.PeriodType, referenceDate time.Time) (income, expense decimal.Decimal, err error)

	// GetPeriodSummaries buckets one calendar year of transactions into
	// per-month/per-week/per-year summaries ordered by their numeric key.
	GetPeriodSummaries(ctx context.Context, period domain.PeriodType, year int) ([]domain.PeriodSummary, error)
}
