package repositories

import (
	"context"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
)

// SettingsRepository manages the singleton settings record.
type SettingsRepository interface {
	// GetSettings returns the settings record, or apperrors.ErrNotFound if
	// none exists yet. Callers decide the fallback; for the carry-over
	// processor absence means the feature is disabled.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings inserts or replaces the singleton settings record.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
