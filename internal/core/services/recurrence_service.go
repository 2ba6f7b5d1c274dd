package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/dates"
	"github.com/google/uuid"
)

// recurrenceService implements RecurrenceSvc. It walks every recurring
// template from its start date to today, materializing one occurrence per
// due calendar day that does not already exist. Missed dates are backfilled:
// a duplicate hit skips that date but the walk continues, so a ledger that
// was not touched for months catches up in a single run.
type recurrenceService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	runtimeRepo portsrepo.RuntimeStateRepository
	reconciler  portssvc.GoalReconcilerSvc
}

// NewRecurrenceService creates a new recurrence service.
func NewRecurrenceService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	runtimeRepo portsrepo.RuntimeStateRepository,
	reconciler portssvc.GoalReconcilerSvc,
) portssvc.RecurrenceSvc {
	return &recurrenceService{
		txnRepo:     txnRepo,
		runtimeRepo: runtimeRepo,
		reconciler:  reconciler,
	}
}

// Ensure recurrenceService implements the RecurrenceSvc interface
var _ portssvc.RecurrenceSvc = (*recurrenceService)(nil)

func (s *recurrenceService) Run(ctx context.Context, now time.Time) (int, error) {
	today := dates.StartOfDay(now)

	// Once-per-day throttle. This is an optimization, not a correctness
	// requirement: the duplicate check below keeps repeated runs idempotent
	// even when the stamp is missing or unreadable.
	lastRun, ok, err := s.runtimeRepo.GetLastRecurrenceRunAt(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read last recurrence run date, proceeding anyway")
	} else if ok && dates.SameDay(lastRun, today) {
		s.LogDebug(ctx, "Recurrence engine already ran today, skipping")
		return 0, nil
	}

	all, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions for recurrence run: %w", err)
	}

	var templates []domain.Transaction
	existing := make(map[string]struct{})
	for _, txn := range all {
		if txn.IsRecurringTemplate {
			templates = append(templates, txn)
			continue
		}
		if txn.TemplateID != "" {
			existing[occurrenceKey(txn.TemplateID, txn.Date)] = struct{}{}
		}
	}

	var created []domain.Transaction
	nowUTC := time.Now().UTC()

	for _, template := range templates {
		if template.Frequency == domain.FrequencyNone {
			continue
		}

		cursor := dates.StartOfDay(template.Date)
		for {
			next := nextOccurrence(cursor, template.Frequency)
			if !next.After(cursor) {
				// Frequency without a next occurrence, defensive.
				break
			}
			cursor = next
			if cursor.After(today) {
				break
			}

			key := occurrenceKey(template.TransactionID, cursor)
			if _, dup := existing[key]; dup {
				// Skip this date but keep walking: later missed dates
				// still need backfilling.
				continue
			}

			occurrence := domain.Transaction{
				TransactionID:        uuid.NewString(),
				TemplateID:           template.TransactionID,
				Type:                 template.Type,
				Amount:               template.Amount,
				Description:          template.Description,
				Date:                 cursor,
				Frequency:            domain.FrequencyNone,
				IsRecurringTemplate:  false,
				CategoryID:           template.CategoryID,
				SourceAccountID:      template.SourceAccountID,
				DestinationAccountID: template.DestinationAccountID,
				SavingGoalID:         template.SavingGoalID,
				AuditFields: domain.AuditFields{
					CreatedAt:     nowUTC,
					LastUpdatedAt: nowUTC,
				},
			}
			created = append(created, occurrence)
			existing[key] = struct{}{}
		}
	}

	if len(created) > 0 {
		if err := s.txnRepo.SaveTransactions(ctx, created); err != nil {
			return 0, fmt.Errorf("failed to save generated occurrences: %w", err)
		}
	}

	// Goal amounts are cached derived state; bring them back in sync with
	// the freshly generated occurrences.
	if err := s.reconciler.RecalculateAll(ctx); err != nil {
		return len(created), fmt.Errorf("recurrence run saved %d occurrences but goal reconciliation failed: %w", len(created), err)
	}

	s.LogInfo(ctx, "Recurrence engine run complete",
		slog.Int("templates", len(templates)),
		slog.Int("created", len(created)))

	if err := s.runtimeRepo.SetLastRecurrenceRunAt(ctx, today); err != nil {
		return len(created), fmt.Errorf("recurrence run succeeded but failed to stamp last-run date: %w", err)
	}

	return len(created), nil
}

// occurrenceKey identifies a generated occurrence by template and calendar day.
func occurrenceKey(templateID string, date time.Time) string {
	return templateID + "|" + date.Format("2006-01-02")
}

// nextOccurrence advances a date by one frequency step. FrequencyNone returns
// the date unchanged, which the caller treats as termination. Month-based
// steps clamp the day so end-of-month templates keep firing.
func nextOccurrence(date time.Time, frequency domain.TransactionFrequency) time.Time {
	switch frequency {
	case domain.FrequencyWeekly:
		return date.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		return dates.AddMonthsClamped(date, 1)
	case domain.FrequencyQuarterly:
		return dates.AddMonthsClamped(date, 3)
	case domain.FrequencyFourMonthly:
		return dates.AddMonthsClamped(date, 4)
	case domain.FrequencySixMonthly:
		return dates.AddMonthsClamped(date, 6)
	case domain.FrequencyYearly:
		return dates.AddYearsClamped(date, 1)
	default:
		return date
	}
}
