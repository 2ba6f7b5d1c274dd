package repositories

import (
	"context"
	"time"
)

// RuntimeStateRepository is a small key-value port for state that lives
// outside the ledger schema: the recurrence engine's once-per-day throttle
// stamp and the data-repair version counter. Keeping it separate lets these
// keys evolve without migrating ledger records, and lets tests inject
// arbitrary "last run" histories.
type RuntimeStateRepository interface {
	// GetLastRecurrenceRunAt returns the date of the last recurrence run.
	// ok is false when the engine has never run.
	GetLastRecurrenceRunAt(ctx context.Context) (at time.Time, ok bool, err error)

	// SetLastRecurrenceRunAt stamps the recurrence run date.
	SetLastRecurrenceRunAt(ctx context.Context, at time.Time) error

	// GetDataFixVersion returns the version of the last applied one-time
	// data repair, zero if none ran yet.
	GetDataFixVersion(ctx context.Context) (int, error)

	// SetDataFixVersion records the version of the last applied data repair.
	SetDataFixVersion(ctx context.Context, version int) error
}
