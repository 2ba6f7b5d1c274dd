package finance

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// FilteredTransactions retains the transactions whose date falls in the same
// calendar period (ISO week, month, or year) as referenceDate, ordered newest
// first. The input slice is not modified.
func FilteredTransactions(transactions []domain.Transaction, period domain.PeriodType, referenceDate time.Time) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))

	for _, txn := range transactions {
		var keep bool
		switch period {
		case domain.PeriodWeek:
			keep = dates.SameISOWeek(txn.Date, referenceDate)
		case domain.PeriodMonth:
			keep = dates.SameMonth(txn.Date, referenceDate)
		case domain.PeriodYear:
			keep = txn.Date.Year() == referenceDate.Year()
		}
		if keep {
			filtered = append(filtered, txn)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered
}

// Totals sums income and expense amounts within the period containing
// referenceDate. Transfers and saving movements do not contribute.
func Totals(transactions []domain.Transaction, period domain.PeriodType, referenceDate time.Time) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero

	for _, txn := range FilteredTransactions(transactions, period, referenceDate) {
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}

	return income, expense
}

// PeriodSummaries restricts the ledger to the given calendar year and groups
// income/expense into buckets keyed by a sortable numeric key: month number
// (1-12), ISO week number, or the year itself. Sorting by the numeric key
// keeps January before March regardless of how month names collate.
//
// Weekly buckets use the ISO week number but the calendar year filter, so a
// late-December transaction whose ISO week is 1 lands in this year's "Week 1"
// bucket. FilteredTransactions matches on ISO year + week instead; the two
// intentionally diverge at year boundaries.
func PeriodSummaries(transactions []domain.Transaction, period domain.PeriodType, year int) []domain.PeriodSummary {
	type bucket struct {
		label   string
		income  decimal.Decimal
		expense decimal.Decimal
	}

	buckets := make(map[int]*bucket)

	for _, txn := range transactions {
		if txn.Date.Year() != year {
			continue
		}

		var key int
		var label string
		switch period {
		case domain.PeriodMonth:
			key = int(txn.Date.Month())
			label = txn.Date.Month().String()
		case domain.PeriodWeek:
			_, week := txn.Date.ISOWeek()
			key = week
			label = fmt.Sprintf("Week %d", week)
		case domain.PeriodYear:
			key = year
			label = strconv.Itoa(year)
		default:
			continue
		}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{label: label, income: decimal.Zero, expense: decimal.Zero}
			buckets[key] = b
		}

		switch txn.Type {
		case domain.Income:
			b.income = b.income.Add(txn.Amount)
		case domain.Expense:
			b.expense = b.expense.Add(txn.Amount)
		}
	}

	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	summaries := make([]domain.PeriodSummary, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		summaries = append(summaries, domain.PeriodSummary{
			Key:     key,
			Label:   b.label,
			Income:  b.income,
			Expense: b.expense,
			Net:     b.income.Sub(b.expense),
		})
	}

	return summaries
}
