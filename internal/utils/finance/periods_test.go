package finance

import (
	"testing"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredTransactionsByMonthNewestFirst(t *testing.T) {
	transactions := []domain.Transaction{
		{TransactionID: "jan-early", Type: domain.Expense, Amount: dec("10"), Date: day(2024, time.January, 3)},
		{TransactionID: "feb", Type: domain.Expense, Amount: dec("20"), Date: day(2024, time.February, 10)},
		{TransactionID: "jan-late", Type: domain.Income, Amount: dec("30"), Date: day(2024, time.January, 25)},
	}

	filtered := FilteredTransactions(transactions, domain.PeriodMonth, day(2024, time.January, 15))

	require.Len(t, filtered, 2)
	assert.Equal(t, "jan-late", filtered[0].TransactionID)
	assert.Equal(t, "jan-early", filtered[1].TransactionID)
}

func TestFilteredTransactionsByISOWeek(t *testing.T) {
	transactions := []domain.Transaction{
		// 2024-01-01 (Monday) through 2024-01-07 form ISO week 1.
		{TransactionID: "in-week", Date: day(2024, time.January, 7)},
		{TransactionID: "next-week", Date: day(2024, time.January, 8)},
	}

	filtered := FilteredTransactions(transactions, domain.PeriodWeek, day(2024, time.January, 1))

	require.Len(t, filtered, 1)
	assert.Equal(t, "in-week", filtered[0].TransactionID)
}

func TestTotals(t *testing.T) {
	transactions := []domain.Transaction{
		{Type: domain.Income, Amount: dec("500"), Date: day(2024, time.March, 2)},
		{Type: domain.Expense, Amount: dec("120"), Date: day(2024, time.March, 9)},
		{Type: domain.Transfer, Amount: dec("999"), Date: day(2024, time.March, 9)},
		{Type: domain.Expense, Amount: dec("50"), Date: day(2024, time.April, 1)}, // outside period
	}

	income, expense := Totals(transactions, domain.PeriodMonth, day(2024, time.March, 20))

	assert.True(t, dec("500").Equal(income))
	assert.True(t, dec("120").Equal(expense))
}

func TestPeriodSummariesMonthlyOrderedByMonthNumber(t *testing.T) {
	transactions := []domain.Transaction{
		{Type: domain.Expense, Amount: dec("30"), Date: day(2024, time.March, 5)},
		{Type: domain.Income, Amount: dec("100"), Date: day(2024, time.January, 10)},
		{Type: domain.Expense, Amount: dec("40"), Date: day(2024, time.January, 20)},
		{Type: domain.Income, Amount: dec("999"), Date: day(2023, time.December, 1)}, // other year
	}

	summaries := PeriodSummaries(transactions, domain.PeriodMonth, 2024)

	// "March" must not sort before "January": ordering follows month number,
	// not the display label.
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Key)
	assert.Equal(t, "January", summaries[0].Label)
	assert.Equal(t, 3, summaries[1].Key)
	assert.Equal(t, "March", summaries[1].Label)

	assert.True(t, dec("100").Equal(summaries[0].Income))
	assert.True(t, dec("40").Equal(summaries[0].Expense))
	assert.True(t, dec("60").Equal(summaries[0].Net))
	assert.True(t, dec("-30").Equal(summaries[1].Net))
}

func TestPeriodSummariesWeekly(t *testing.T) {
	transactions := []domain.Transaction{
		{Type: domain.Expense, Amount: dec("10"), Date: day(2024, time.January, 2)},  // week 1
		{Type: domain.Expense, Amount: dec("20"), Date: day(2024, time.January, 10)}, // week 2
	}

	summaries := PeriodSummaries(transactions, domain.PeriodWeek, 2024)

	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Key)
	assert.Equal(t, "Week 1", summaries[0].Label)
	assert.Equal(t, 2, summaries[1].Key)
}

func TestPeriodSummariesWeeklyYearBoundary(t *testing.T) {
	transactions := []domain.Transaction{
		// 2025-12-30 belongs to ISO week 1 of 2026, but the calendar-year
		// filter keeps it in 2025, so it shares the "Week 1" bucket with
		// early January.
		{Type: domain.Expense, Amount: dec("25"), Date: day(2025, time.December, 30)},
		{Type: domain.Expense, Amount: dec("10"), Date: day(2025, time.January, 2)}, // week 1 of 2025
		{Type: domain.Income, Amount: dec("99"), Date: day(2026, time.January, 2)},  // other year
	}

	summaries := PeriodSummaries(transactions, domain.PeriodWeek, 2025)

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Key)
	assert.Equal(t, "Week 1", summaries[0].Label)
	assert.True(t, dec("35").Equal(summaries[0].Expense))
}

func TestPeriodSummariesYearlySingleBucket(t *testing.T) {
	transactions := []domain.Transaction{
		{Type: domain.Income, Amount: dec("100"), Date: day(2024, time.February, 1)},
		{Type: domain.Expense, Amount: dec("60"), Date: day(2024, time.October, 1)},
	}

	summaries := PeriodSummaries(transactions, domain.PeriodYear, 2024)

	require.Len(t, summaries, 1)
	assert.Equal(t, 2024, summaries[0].Key)
	assert.Equal(t, "2024", summaries[0].Label)
	assert.True(t, dec("40").Equal(summaries[0].Net))
}
