package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	"github.com/budgetbuddy/budget_buddy_app/internal/models"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the settings singleton.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

const settingsColumns = `settings_id, carry_over_enabled, carry_over_to_account, carry_over_account_id, preferred_period_view, currency_code, language_code, onboarding_completed, created_at, last_updated_at`

// GetSettings returns the settings row, or apperrors.ErrNotFound when the
// singleton was never written.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM app_settings LIMIT 1;`

	var modelSettings models.Settings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&modelSettings.SettingsID,
		&modelSettings.CarryOverEnabled,
		&modelSettings.CarryOverToAccount,
		&modelSettings.CarryOverAccountID,
		&modelSettings.PreferredPeriodView,
		&modelSettings.CurrencyCode,
		&modelSettings.LanguageCode,
		&modelSettings.OnboardingCompleted,
		&modelSettings.CreatedAt,
		&modelSettings.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	domainSettings := mapping.ToDomainSettings(modelSettings)
	return &domainSettings, nil
}

// SaveSettings inserts or replaces the singleton settings row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	modelSettings := mapping.ToModelSettings(settings)

	query := `
		INSERT INTO app_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (settings_id) DO UPDATE SET
			carry_over_enabled = EXCLUDED.carry_over_enabled,
			carry_over_to_account = EXCLUDED.carry_over_to_account,
			carry_over_account_id = EXCLUDED.carry_over_account_id,
			preferred_period_view = EXCLUDED.preferred_period_view,
			currency_code = EXCLUDED.currency_code,
			language_code = EXCLUDED.language_code,
			onboarding_completed = EXCLUDED.onboarding_completed,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSettings.SettingsID,
		modelSettings.CarryOverEnabled,
		modelSettings.CarryOverToAccount,
		modelSettings.CarryOverAccountID,
		modelSettings.PreferredPeriodView,
		modelSettings.CurrencyCode,
		modelSettings.LanguageCode,
		modelSettings.OnboardingCompleted,
		modelSettings.CreatedAt,
		modelSettings.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
