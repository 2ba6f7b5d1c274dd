package dto

import (
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
)

// UpdateSettingsRequest defines the data allowed for updating the singleton
// settings record. Missing fields keep their current value.
type UpdateSettingsRequest struct {
	CarryOverEnabled    *bool              `json:"carryOverEnabled"`
	CarryOverToAccount  *bool              `json:"carryOverToAccount"`
	CarryOverAccountID  *string            `json:"carryOverAccountID"`
	PreferredPeriodView *domain.PeriodType `json:"preferredPeriodView" binding:"omitempty,oneof=week month year"`
	CurrencyCode        *string            `json:"currencyCode"`
	LanguageCode        *string            `json:"languageCode"`
	OnboardingCompleted *bool              `json:"onboardingCompleted"`
}

// SettingsResponse defines the data returned for the settings record.
type SettingsResponse struct {
	SettingsID          string            `json:"settingsID"`
	CarryOverEnabled    bool              `json:"carryOverEnabled"`
	CarryOverToAccount  bool              `json:"carryOverToAccount"`
	CarryOverAccountID  string            `json:"carryOverAccountID,omitempty"`
	PreferredPeriodView domain.PeriodType `json:"preferredPeriodView"`
	CurrencyCode        string            `json:"currencyCode"`
	LanguageCode        string            `json:"languageCode"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
	CreatedAt           time.Time         `json:"createdAt"`
	LastUpdatedAt       time.Time         `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts a domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		SettingsID:          s.SettingsID,
		CarryOverEnabled:    s.CarryOverEnabled,
		CarryOverToAccount:  s.CarryOverToAccount,
		CarryOverAccountID:  s.CarryOverAccountID,
		PreferredPeriodView: s.PreferredPeriodView,
		CurrencyCode:        s.CurrencyCode,
		LanguageCode:        s.LanguageCode,
		OnboardingCompleted: s.OnboardingCompleted,
		CreatedAt:           s.CreatedAt,
		LastUpdatedAt:       s.LastUpdatedAt,
	}
}
