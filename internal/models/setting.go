package models

// Setting is a per-user key/value preference row. The ledger core reads
// "currency" for notification formatting and "low_balance_alert" (cents)
// for the low-balance warning threshold.
type Setting struct {
	Base
	UserID       uint   `gorm:"not null;index:idx_settings_user_key,unique" json:"user_id"`
	SettingKey   string `gorm:"not null;index:idx_settings_user_key,unique" json:"setting_key"`
	SettingValue string `json:"setting_value"`
}

// Setting keys the ledger core depends on.
const (
	SettingCurrency        = "currency"
	SettingLowBalanceAlert = "low_balance_alert"
	SettingDarkMode        = "dark_mode"
)

// DefaultLowBalanceAlert is the low-balance warning threshold in cents
// used when a user has no explicit setting (5,000.00 in the wallet
// currency, matching the application default).
const DefaultLowBalanceAlert int64 = 500000
