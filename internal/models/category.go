package models

// Category represents a transaction category row.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	IconName   string `db:"icon_name"`
	ColorHex   string `db:"color_hex"`
	IsDefault  bool   `db:"is_default"`
	AuditFields
}
