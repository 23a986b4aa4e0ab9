package models

// WalletBalance is the single per-user wallet row. Almost every posting
// operation mutates it, making it the serialization point for a user's
// ledger; writers must lock it for update inside their store transaction.
//
// All amounts are integer cents.
type WalletBalance struct {
	Base
	UserID         uint  `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentBalance int64 `gorm:"not null;default:0" json:"current_balance"`
	TotalIncome    int64 `gorm:"not null;default:0" json:"total_income"`
	TotalExpenses  int64 `gorm:"not null;default:0" json:"total_expenses"`
}
