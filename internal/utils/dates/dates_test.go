package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, time.March, 15, 13, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2024, time.March, 15), StartOfDay(ts))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestSameISOWeek(t *testing.T) {
	// 2024-12-30 and 2025-01-01 are both in ISO week 1 of 2025.
	assert.True(t, SameISOWeek(date(2024, time.December, 30), date(2025, time.January, 1)))
	// 2024-12-29 is a Sunday, still week 52 of 2024.
	assert.False(t, SameISOWeek(date(2024, time.December, 29), date(2024, time.December, 30)))
}

func TestPreviousMonthBounds(t *testing.T) {
	start, end := PreviousMonthBounds(date(2024, time.March, 15))

	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), end)
}

func TestPreviousMonthBoundsAcrossYear(t *testing.T) {
	start, end := PreviousMonthBounds(date(2024, time.January, 10))

	assert.Equal(t, date(2023, time.December, 1), start)
	assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"plain month", date(2024, time.January, 15), 1, date(2024, time.February, 15)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to short february", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"clamp to 30-day month", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"quarter across year end", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonthsClamped(tt.in, tt.months))
		})
	}
}

func TestAddYearsClamped(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), AddYearsClamped(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2025, time.June, 10), AddYearsClamped(date(2024, time.June, 10), 1))
}
