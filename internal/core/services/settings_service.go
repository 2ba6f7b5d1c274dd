package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/google/uuid"
)

// settingsService implements the SettingsSvcFacade interface. Settings is an
// explicit optional singleton: reads report absence via ErrNotFound instead
// of creating a record on the fly, and features that depend on it treat
// absence as "disabled".
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// Ensure settingsService implements the SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return s.settingsRepo.GetSettings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		settings = defaultSettings()
	} else if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	if req.CarryOverEnabled != nil {
		settings.CarryOverEnabled = *req.CarryOverEnabled
	}
	if req.CarryOverToAccount != nil {
		settings.CarryOverToAccount = *req.CarryOverToAccount
	}
	if req.CarryOverAccountID != nil {
		settings.CarryOverAccountID = *req.CarryOverAccountID
	}
	if req.PreferredPeriodView != nil {
		settings.PreferredPeriodView = *req.PreferredPeriodView
	}
	if req.CurrencyCode != nil {
		settings.CurrencyCode = *req.CurrencyCode
	}
	if req.LanguageCode != nil {
		settings.LanguageCode = *req.LanguageCode
	}
	if req.OnboardingCompleted != nil {
		settings.OnboardingCompleted = *req.OnboardingCompleted
	}
	settings.LastUpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}

// defaultSettings mirrors the first-launch defaults: carry-over computed but
// not routed to an account until the user picks one.
func defaultSettings() *domain.Settings {
	now := time.Now().UTC()
	return &domain.Settings{
		SettingsID:          uuid.NewString(),
		CarryOverEnabled:    true,
		CarryOverToAccount:  false,
		PreferredPeriodView: domain.PeriodMonth,
		CurrencyCode:        "EUR",
		LanguageCode:        "en",
		OnboardingCompleted: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}
