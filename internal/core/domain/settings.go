package domain

// Settings is the application's singleton settings record. At most one row
// exists; the absence of any settings record is treated as "carry-over
// disabled" by the carry-over processor.
type Settings struct {
	SettingsID          string     `json:"settingsID"` // Primary Key (UUID)
	CarryOverEnabled    bool       `json:"carryOverEnabled"`
	CarryOverToAccount  bool       `json:"carryOverToAccount"`
	CarryOverAccountID  string     `json:"carryOverAccountID"` // Empty means no target account selected
	PreferredPeriodView PeriodType `json:"preferredPeriodView"`
	CurrencyCode        string     `json:"currencyCode"` // ISO 4217, presentation concern only
	LanguageCode        string     `json:"languageCode"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
	AuditFields
}
