package models

import "time"

// Budget represents a period-scoped spending allocation for a category.
// SpentAmount is a materialized aggregate: it is recomputed from the
// transaction log and persisted on every budget list view, so it can lag
// the live transactions between views (reset leaves it zero until the
// next recompute).
type Budget struct {
	Base
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	CategoryID      uint      `gorm:"not null" json:"category_id"`
	Name            string    `gorm:"not null" json:"name"`
	AllocatedAmount int64     `gorm:"not null" json:"allocated_amount"`
	PeriodStart     time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd       time.Time `gorm:"not null" json:"period_end"`
	AlertThreshold  float64   `gorm:"not null;default:80" json:"alert_threshold"`
	SpentAmount     int64     `gorm:"not null;default:0" json:"spent_amount"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
