package services

import (
	"context"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
)

// SettingsSvcFacade manages the singleton settings record.
type SettingsSvcFacade interface {
	// GetSettings returns the settings record, or apperrors.ErrNotFound if
	// onboarding never created one.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateSettings applies a partial update, creating the record with
	// defaults first if none exists yet.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
