package domain

// Category labels income and expense transactions.
// Default categories are seeded on first launch and shared by every user.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`
	IconName   string `json:"iconName"`
	ColorHex   string `json:"colorHex"` // Optional
	IsDefault  bool   `json:"isDefault"`
	AuditFields
}
