// Package dates holds the calendar arithmetic shared by the recurrence and
// carry-over engines. All comparisons are calendar-day based: transactions
// carry full timestamps but the engines only care about the day they fall on.
package dates

import "time"

// StartOfDay returns t truncated to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameISOWeek reports whether a and b fall in the same ISO 8601 week.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PreviousMonthBounds returns the inclusive start and end of the full
// calendar month preceding ref's month.
func PreviousMonthBounds(ref time.Time) (start, end time.Time) {
	currentMonthStart := StartOfMonth(ref)
	start = currentMonthStart.AddDate(0, -1, 0)
	end = currentMonthStart.Add(-time.Second)
	return start, end
}

// AddMonthsClamped adds n months to t, clamping the day of month to the last
// day of the target month. Unlike AddDate, Jan 31 + 1 month yields Feb 28
// (or 29), not Mar 3, so a template dated on the 31st keeps recurring near
// the end of every month.
func AddMonthsClamped(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := daysInMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYearsClamped adds n years to t with the same day clamping, so Feb 29
// advances to Feb 28 in non-leap years.
func AddYearsClamped(t time.Time, n int) time.Time {
	return AddMonthsClamped(t, 12*n)
}

func daysInMonth(t time.Time) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
