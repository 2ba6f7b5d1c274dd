package models

// Settings represents the singleton application settings row.
type Settings struct {
	SettingsID          string `db:"settings_id"`
	CarryOverEnabled    bool   `db:"carry_over_enabled"`
	CarryOverToAccount  bool   `db:"carry_over_to_account"`
	CarryOverAccountID  string `db:"carry_over_account_id"`
	PreferredPeriodView string `db:"preferred_period_view"`
	CurrencyCode        string `db:"currency_code"`
	LanguageCode        string `db:"language_code"`
	OnboardingCompleted bool   `db:"onboarding_completed"`
	AuditFields
}
