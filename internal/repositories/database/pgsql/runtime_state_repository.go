package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Runtime state keys. Values are stored as text, one row per key.
const (
	keyLastRecurrenceRunAt = "last_recurrence_run_at"
	keyDataFixVersion      = "data_fix_version"
)

type PgxRuntimeStateRepository struct {
	BaseRepository
}

// newPgxRuntimeStateRepository creates a new repository for runtime state.
func newPgxRuntimeStateRepository(pool *pgxpool.Pool) portsrepo.RuntimeStateRepository {
	return &PgxRuntimeStateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RuntimeStateRepository = (*PgxRuntimeStateRepository)(nil)

func (r *PgxRuntimeStateRepository) getValue(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM runtime_state WHERE key = $1;`

	var value string
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read runtime state key %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PgxRuntimeStateRepository) setValue(ctx context.Context, key, value string, now time.Time) error {
	query := `
		INSERT INTO runtime_state (key, value, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, key, value, now); err != nil {
		return fmt.Errorf("failed to write runtime state key %s: %w", key, err)
	}
	return nil
}

// GetLastRecurrenceRunAt returns the date of the last recurrence run.
func (r *PgxRuntimeStateRepository) GetLastRecurrenceRunAt(ctx context.Context) (time.Time, bool, error) {
	value, ok, err := r.getValue(ctx, keyLastRecurrenceRunAt)
	if err != nil || !ok {
		return time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("malformed last recurrence run date %q: %w", value, err)
	}
	return at, true, nil
}

// SetLastRecurrenceRunAt stamps the recurrence run date.
func (r *PgxRuntimeStateRepository) SetLastRecurrenceRunAt(ctx context.Context, at time.Time) error {
	return r.setValue(ctx, keyLastRecurrenceRunAt, at.Format(time.RFC3339), time.Now().UTC())
}

// GetDataFixVersion returns the version of the last applied data repair.
func (r *PgxRuntimeStateRepository) GetDataFixVersion(ctx context.Context) (int, error) {
	value, ok, err := r.getValue(ctx, keyDataFixVersion)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	version, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("malformed data fix version %q: %w", value, err)
	}
	return version, nil
}

// SetDataFixVersion records the version of the last applied data repair.
func (r *PgxRuntimeStateRepository) SetDataFixVersion(ctx context.Context, version int) error {
	return r.setValue(ctx, keyDataFixVersion, strconv.Itoa(version), time.Now().UTC())
}
