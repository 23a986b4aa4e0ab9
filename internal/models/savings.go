package models

import "time"

// SavingsStatus represents the state of a savings account.
type SavingsStatus string

const (
	SavingsStatusActive SavingsStatus = "active"
	SavingsStatusPaused SavingsStatus = "paused"
	SavingsStatusClosed SavingsStatus = "closed"
)

// ReminderFrequency controls how often savings reminders and auto-saves run.
type ReminderFrequency string

const (
	ReminderDaily   ReminderFrequency = "daily"
	ReminderWeekly  ReminderFrequency = "weekly"
	ReminderMonthly ReminderFrequency = "monthly"
)

// SavingsAccount is a named sub-ledger for a savings goal. CurrentAmount
// only changes through SavingsTransaction postings, each of which also
// posts an offsetting wallet Transaction.
type SavingsAccount struct {
	Base
	UserID            uint              `gorm:"not null;index" json:"user_id"`
	Name              string            `gorm:"not null" json:"name"`
	TargetAmount      int64             `gorm:"not null" json:"target_amount"`
	CurrentAmount     int64             `gorm:"not null;default:0" json:"current_amount"`
	TargetDate        *time.Time        `json:"target_date,omitempty"`
	Description       string            `json:"description,omitempty"`
	Color             string            `gorm:"default:'#16ac2e'" json:"color"`
	Icon              string            `gorm:"default:'fas fa-piggy-bank'" json:"icon"`
	AutoSaveAmount    int64             `gorm:"default:0" json:"auto_save_amount"`
	ReminderFrequency ReminderFrequency `gorm:"default:'weekly'" json:"reminder_frequency"`
	Status            SavingsStatus     `gorm:"default:'active'" json:"status"`

	Transactions []SavingsTransaction `gorm:"foreignKey:SavingsAccountID" json:"transactions,omitempty"`
	Reminders    []SavingsReminder    `gorm:"foreignKey:SavingsAccountID" json:"reminders,omitempty"`
}

// SavingsTransactionType is the direction of a savings posting.
type SavingsTransactionType string

const (
	SavingsDeposit    SavingsTransactionType = "deposit"
	SavingsWithdrawal SavingsTransactionType = "withdrawal"
)

// SavingsTransaction records a deposit into or withdrawal from a savings
// account. BalanceBefore/BalanceAfter snapshot the savings account's
// balance, not the wallet's.
type SavingsTransaction struct {
	Base
	SavingsAccountID uint                   `gorm:"not null;index" json:"savings_account_id"`
	UserID           uint                   `gorm:"not null;index" json:"user_id"`
	Amount           int64                  `gorm:"not null" json:"amount"`
	TransactionType  SavingsTransactionType `gorm:"not null" json:"transaction_type"`
	Description      string                 `json:"description"`
	BalanceBefore    int64                  `json:"balance_before"`
	BalanceAfter     int64                  `json:"balance_after"`
}

// SavingsReminder logs a sent savings reminder; the reminder sweep uses the
// most recent row to throttle by the account's reminder frequency.
type SavingsReminder struct {
	Base
	SavingsAccountID uint      `gorm:"not null;index" json:"savings_account_id"`
	UserID           uint      `gorm:"not null" json:"user_id"`
	ReminderDate     time.Time `gorm:"not null" json:"reminder_date"`
	Message          string    `json:"message"`
	IsSent           bool      `gorm:"default:false" json:"is_sent"`
}
