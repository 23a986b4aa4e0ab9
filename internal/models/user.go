package models

// User represents the user model in the database
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`
	Salary   int64  `gorm:"default:0" json:"salary"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Wallet          *WalletBalance   `gorm:"foreignKey:UserID" json:"wallet,omitempty"`
	Transactions    []Transaction    `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Bills           []Bill           `gorm:"foreignKey:UserID" json:"bills,omitempty"`
	Budgets         []Budget         `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	SavingsAccounts []SavingsAccount `gorm:"foreignKey:UserID" json:"savings_accounts,omitempty"`
}
