// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validCurrencies contains the ISO 4217 currency codes accepted for the
// per-user currency setting.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BIF": true, "BWP": true, "CAD": true,
	"CHF": true, "CNY": true, "EGP": true, "ETB": true, "EUR": true,
	"GBP": true, "GHS": true, "INR": true, "JPY": true, "KES": true,
	"MWK": true, "MZN": true, "NGN": true, "RWF": true, "SOS": true,
	"SSP": true, "TZS": true, "UGX": true, "USD": true, "XAF": true,
	"XOF": true, "ZAR": true, "ZMW": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("recurring_period", validateRecurringPeriod)
		_ = v.RegisterValidation("bill_priority", validateBillPriority)
		_ = v.RegisterValidation("reminder_frequency", validateReminderFrequency)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "bank", "mobile_money", "card":
		return true
	}
	return false
}

func validateRecurringPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "monthly", "quarterly", "yearly":
		return true
	}
	return false
}

func validateBillPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateReminderFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "monthly":
		return true
	}
	return false
}
