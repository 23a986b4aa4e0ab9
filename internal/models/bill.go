package models

import "time"

// BillStatus represents the lifecycle state of a bill.
//
// Valid transitions: pending -> {overdue, partial, paid},
// overdue -> {partial, paid}, partial -> paid. Paid is terminal.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPartial BillStatus = "partial"
	BillStatusOverdue BillStatus = "overdue"
	BillStatusPaid    BillStatus = "paid"
)

// RecurringPeriod represents how often a recurring bill repeats.
type RecurringPeriod string

const (
	RecurringWeekly    RecurringPeriod = "weekly"
	RecurringMonthly   RecurringPeriod = "monthly"
	RecurringQuarterly RecurringPeriod = "quarterly"
	RecurringYearly    RecurringPeriod = "yearly"
)

// BillPriority represents a bill's user-assigned priority.
type BillPriority string

const (
	PriorityLow    BillPriority = "low"
	PriorityMedium BillPriority = "medium"
	PriorityHigh   BillPriority = "high"
)

// Bill represents a payable obligation. RemainingBalance starts equal to
// Amount and decreases monotonically with each partial payment until it
// reaches exactly zero at status paid.
type Bill struct {
	Base
	UserID           uint            `gorm:"not null;index" json:"user_id"`
	CategoryID       uint            `gorm:"not null" json:"category_id"`
	Name             string          `gorm:"not null" json:"name"`
	Amount           int64           `gorm:"not null" json:"amount"`
	RemainingBalance int64           `gorm:"not null" json:"remaining_balance"`
	DueDate          time.Time       `gorm:"not null" json:"due_date"`
	Status           BillStatus      `gorm:"not null;default:'pending'" json:"status"`
	IsRecurring      bool            `gorm:"default:false" json:"is_recurring"`
	RecurringPeriod  RecurringPeriod `gorm:"default:'monthly'" json:"recurring_period"`
	AutoPay          bool            `gorm:"default:false" json:"auto_pay"`
	Priority         BillPriority    `gorm:"default:'medium'" json:"priority"`
	ThresholdWarning int64           `gorm:"default:0" json:"threshold_warning"`
	Notes            string          `json:"notes,omitempty"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// NextDueDate returns the bill's due date advanced by one recurring period.
func (b *Bill) NextDueDate() time.Time {
	switch b.RecurringPeriod {
	case RecurringWeekly:
		return b.DueDate.AddDate(0, 0, 7)
	case RecurringQuarterly:
		return b.DueDate.AddDate(0, 3, 0)
	case RecurringYearly:
		return b.DueDate.AddDate(1, 0, 0)
	default:
		return b.DueDate.AddDate(0, 1, 0)
	}
}

// IsPayable reports whether the bill can accept a payment.
func (b *Bill) IsPayable() bool {
	return b.Status == BillStatusPending || b.Status == BillStatusOverdue || b.Status == BillStatusPartial
}
