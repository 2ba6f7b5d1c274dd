package services

import (
	"context"
	"time"
)

// RecurrenceSvc materializes missing occurrences of recurring templates up to
// "now". The run is throttled to at most once per calendar day via the
// runtime-state port, but running it more often is harmless: the per-date
// duplicate check makes generation idempotent on its own.
type RecurrenceSvc interface {
	// Run scans all recurring templates and backfills missing occurrences.
	// It returns the number of transactions created; (0, nil) when throttled.
	Run(ctx context.Context, now time.Time) (int, error)
}

// CarryOverSvc injects the previous month's positive net (income - expense)
// as a single income transaction into the configured account, at most once
// per calendar month.
type CarryOverSvc interface {
	// ApplyIfNeeded runs the carry-over for the month containing
	// referenceDate. It reports whether a carry-over transaction was created.
	ApplyIfNeeded(ctx context.Context, referenceDate time.Time) (bool, error)
}

// DataRepairSvc applies versioned one-time data repairs at startup, tracked
// by the data-fix version counter in runtime state.
type DataRepairSvc interface {
	// RepairIfNeeded applies every repair newer than the stored version.
	RepairIfNeeded(ctx context.Context) error
}
