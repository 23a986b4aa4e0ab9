package models

import "time"

// Base contains common columns for all tables.
//
// Ledger rows are hard-deleted rather than soft-deleted: a delete always
// reverses its effect on the wallet aggregates, so keeping tombstones
// around would double-count on recompute.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
