package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/dates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarryOverDescription is the sentinel description that marks a carry-over
// transaction. Together with the income type, the first-of-month date and
// the target account it forms the idempotence key for the monthly run.
const CarryOverDescription = "Balance carried over from previous month"

// carryOverService implements CarryOverSvc: once per month it injects the
// previous month's positive net as a single income transaction into the
// account configured in settings.
type carryOverService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	accountRepo  portsrepo.AccountReader
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewCarryOverService creates a new carry-over service.
func NewCarryOverService(
	settingsRepo portsrepo.SettingsRepository,
	accountRepo portsrepo.AccountReader,
	txnRepo portsrepo.TransactionRepositoryFacade,
) portssvc.CarryOverSvc {
	return &carryOverService{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
		txnRepo:      txnRepo,
	}
}

// Ensure carryOverService implements the CarryOverSvc interface
var _ portssvc.CarryOverSvc = (*carryOverService)(nil)

func (s *carryOverService) ApplyIfNeeded(ctx context.Context, referenceDate time.Time) (bool, error) {
	// No settings record means the feature was never configured: disabled.
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch settings, treating carry-over as disabled")
		}
		return false, nil
	}

	if !settings.CarryOverEnabled || !settings.CarryOverToAccount || settings.CarryOverAccountID == "" {
		return false, nil
	}

	monthStart, monthEnd := dates.PreviousMonthBounds(referenceDate)
	// The carry-over lands on the first day of the current month, so the
	// duplicate check must look there, not in the previous month.
	carryOverDate := dates.StartOfMonth(referenceDate)

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions, skipping carry-over")
		return false, nil
	}

	for _, txn := range transactions {
		if txn.Type == domain.Income &&
			txn.Description == CarryOverDescription &&
			dates.SameDay(txn.Date, carryOverDate) &&
			txn.DestinationAccountID == settings.CarryOverAccountID {
			// Already applied for this month.
			return false, nil
		}
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, settings.CarryOverAccountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch carry-over target account, skipping",
				slog.String("account_id", settings.CarryOverAccountID))
		}
		return false, nil
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range transactions {
		if txn.Date.Before(monthStart) || txn.Date.After(monthEnd) {
			continue
		}
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}

	carryOverAmount := income.Sub(expense)
	if carryOverAmount.LessThanOrEqual(decimal.Zero) {
		// Losses are not carried over as negative injections.
		return false, nil
	}

	now := time.Now().UTC()
	carryTxn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Type:                 domain.Income,
		Amount:               carryOverAmount,
		Description:          CarryOverDescription,
		Date:                 carryOverDate,
		Frequency:            domain.FrequencyNone,
		IsRecurringTemplate:  false,
		DestinationAccountID: settings.CarryOverAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, carryTxn); err != nil {
		return false, fmt.Errorf("failed to save carry-over transaction: %w", err)
	}

	s.LogInfo(ctx, "Monthly carry-over applied",
		slog.String("amount", utils.FormatAmount(carryOverAmount, settings.CurrencyCode)),
		slog.String("account_id", settings.CarryOverAccountID),
		slog.String("date", carryOverDate.Format("2006-01-02")))
	return true, nil
}
