package models

import (
	"time"
)

// AuditFields contains common fields for tracking record changes.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
