// Package errors provides custom error types for the Luidigitals API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrCategoryInUse     = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing transactions, bills, or budgets", StatusCode: http.StatusConflict}
)

// Transaction and wallet errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Transaction type must be income or expense", StatusCode: http.StatusBadRequest}
	ErrInvalidPaymentMethod   = &AppError{Code: "INVALID_PAYMENT_METHOD", Message: "Unsupported payment method", StatusCode: http.StatusBadRequest}
	ErrInsufficientFunds      = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Insufficient funds for this transaction", StatusCode: http.StatusBadRequest}
)

// Bill errors.
var (
	ErrBillNotFound         = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrBillNotPayable       = &AppError{Code: "BILL_NOT_PAYABLE", Message: "Bill is not pending or overdue", StatusCode: http.StatusBadRequest}
	ErrDuplicateBill        = &AppError{Code: "DUPLICATE_BILL", Message: "A similar bill already exists with the same name, amount, and due date", StatusCode: http.StatusConflict}
	ErrInvalidPaymentAmount = &AppError{Code: "INVALID_PAYMENT_AMOUNT", Message: "Payment amount must be positive and not exceed the remaining balance", StatusCode: http.StatusBadRequest}
	ErrNoBillsToPay         = &AppError{Code: "NO_BILLS_TO_PAY", Message: "No bills to pay", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Savings errors.
var (
	ErrSavingsAccountNotFound    = &AppError{Code: "SAVINGS_ACCOUNT_NOT_FOUND", Message: "Savings account not found", StatusCode: http.StatusNotFound}
	ErrInsufficientSavings       = &AppError{Code: "INSUFFICIENT_SAVINGS_BALANCE", Message: "Insufficient savings balance for this withdrawal", StatusCode: http.StatusBadRequest}
	ErrInsufficientWalletBalance = &AppError{Code: "INSUFFICIENT_WALLET_BALANCE", Message: "Insufficient wallet balance for this deposit", StatusCode: http.StatusBadRequest}
	ErrTargetDateInPast          = &AppError{Code: "TARGET_DATE_IN_PAST", Message: "Target date must be in the future", StatusCode: http.StatusBadRequest}
)

// Notification errors.
var (
	ErrNotificationNotFound = &AppError{Code: "NOTIFICATION_NOT_FOUND", Message: "Notification not found", StatusCode: http.StatusNotFound}
)
