package models

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Notification is a user-visible side-effect row emitted by ledger
// operations. Creation is fire-and-forget: there is no delivery guarantee
// beyond the row existing.
type Notification struct {
	Base
	UserID        uint             `gorm:"not null;index" json:"user_id"`
	Title         string           `gorm:"not null" json:"title"`
	Message       string           `gorm:"not null" json:"message"`
	Type          NotificationType `gorm:"not null;default:'info'" json:"type"`
	RelatedBillID *uint            `json:"related_bill_id,omitempty"`
	IsRead        bool             `gorm:"default:false" json:"is_read"`
}
