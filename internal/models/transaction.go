package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodBank        PaymentMethod = "bank"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodCard        PaymentMethod = "card"
)

// Transaction represents a single wallet posting. BalanceAfter is the
// wallet balance snapshot immediately after this transaction in
// transaction_date order; edits and deletes of earlier transactions
// shift the snapshots of all later ones.
type Transaction struct {
	Base
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	CategoryID      uint            `gorm:"not null" json:"category_id"`
	BillID          *uint           `gorm:"index" json:"bill_id,omitempty"`
	Type            TransactionType `gorm:"not null" json:"type"`
	Amount          int64           `gorm:"not null" json:"amount"`
	Description     string          `gorm:"not null" json:"description"`
	PaymentMethod   PaymentMethod   `gorm:"not null;default:'cash'" json:"payment_method"`
	BalanceAfter    int64           `gorm:"not null" json:"balance_after"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Bill     *Bill    `gorm:"foreignKey:BillID" json:"bill,omitempty"`
}
