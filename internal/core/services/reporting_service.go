package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface. It fetches a
// snapshot of the ledger and delegates to the pure calculation layer; nothing
// here mutates state.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for balance calculation", slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balance calculation", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to list transactions: %w", err)
	}

	return finance.AccountBalance(*account, transactions), nil
}

func (s *reportingService) GetNetWorth(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for net worth")
		return decimal.Zero, fmt.Errorf("failed to list accounts: %w", err)
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for net worth")
		return decimal.Zero, fmt.Errorf("failed to list transactions: %w", err)
	}

	return finance.NetWorth(accounts, transactions), nil
}

func (s *reportingService) GetPeriodTransactions(ctx context.Context, period domain.PeriodType, referenceDate time.Time) ([]domain.Transaction, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for period filter", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return finance.FilteredTransactions(transactions, period, referenceDate), nil
}

func (s *reportingService) GetTotals(ctx context.Context, period domain.PeriodType, referenceDate time.Time) (income, expense decimal.Decimal, err error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for totals", slog.String("period", string(period)))
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to list transactions: %w", err)
	}

	income, expense = finance.Totals(transactions, period, referenceDate)
	return income, expense, nil
}

func (s *reportingService) GetPeriodSummaries(ctx context.Context, period domain.PeriodType, year int) ([]domain.PeriodSummary, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for period summaries",
			slog.String("period", string(period)),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return finance.PeriodSummaries(transactions, period, year), nil
}
