package models

// Category represents a transaction category. Rows with a NULL UserID and
// IsDefault set are global and visible to every user.
type Category struct {
	Base
	UserID    *uint  `gorm:"index" json:"user_id,omitempty"`
	Name      string `gorm:"not null" json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Bills        []Bill        `gorm:"foreignKey:CategoryID" json:"bills,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}

// SavingsTransferCategoryName is the reserved default category used for the
// offsetting wallet postings created by savings deposits and withdrawals.
const SavingsTransferCategoryName = "Savings Transfer"
