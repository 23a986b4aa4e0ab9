package services

import (
	"time"

	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// WalletServicer defines the contract for wallet balance access.
type WalletServicer interface {
	// GetWallet returns the user's wallet row, creating it lazily with a
	// zero balance on first access.
	GetWallet(userID uint) (*models.WalletBalance, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name, icon, color string) (*models.Category, error)
	GetUserCategories(userID uint) ([]models.Category, error)
	// GetCategoryForUser resolves a category the user may post against:
	// either their own or a global default.
	GetCategoryForUser(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name, icon, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *uint
	BillID     *uint
}

// TransactionServicer defines the contract for wallet transaction postings.
type TransactionServicer interface {
	AddTransaction(userID uint, txType models.TransactionType, amount int64, categoryID uint, paymentMethod models.PaymentMethod, description string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, txType models.TransactionType, amount int64, categoryID uint, paymentMethod models.PaymentMethod, description, referenceNumber, notes string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) (int64, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
}

// BillInput carries the fields accepted when creating or editing a bill.
type BillInput struct {
	Name             string
	Amount           int64
	CategoryID       uint
	DueDate          time.Time
	IsRecurring      bool
	RecurringPeriod  models.RecurringPeriod
	AutoPay          bool
	Priority         models.BillPriority
	ThresholdWarning int64
	Notes            string
}

// BillFilter holds optional filter parameters for listing bills.
type BillFilter struct {
	Status     *models.BillStatus
	CategoryID *uint
	Priority   *models.BillPriority
}

// BillStats aggregates a user's bills by status for the list view.
type BillStats struct {
	PendingCount  int64 `json:"pending_count"`
	PartialCount  int64 `json:"partial_count"`
	OverdueCount  int64 `json:"overdue_count"`
	PaidCount     int64 `json:"paid_count"`
	PendingAmount int64 `json:"pending_amount"`
	PartialAmount int64 `json:"partial_amount"`
	OverdueAmount int64 `json:"overdue_amount"`
	PaidThisMonth int64 `json:"paid_this_month"`
}

// BillPaymentResult reports the outcome of a single bill payment.
type BillPaymentResult struct {
	BillID           uint              `json:"bill_id"`
	AmountPaid       int64             `json:"amount_paid"`
	RemainingBalance int64             `json:"remaining_balance"`
	Status           models.BillStatus `json:"status"`
	NewWalletBalance int64             `json:"new_wallet_balance"`
}

// PayAllResult reports the outcome of paying every payable bill at once.
type PayAllResult struct {
	PaidCount        int   `json:"paid_count"`
	TotalAmount      int64 `json:"total_amount"`
	NewWalletBalance int64 `json:"new_wallet_balance"`
}

// BillServicer defines the contract for the bill lifecycle.
type BillServicer interface {
	CreateBill(userID uint, in BillInput) (*models.Bill, error)
	UpdateBill(userID, billID uint, in BillInput) (*models.Bill, error)
	GetUserBills(userID uint, filter BillFilter) ([]models.Bill, *BillStats, error)
	GetBillByID(userID, billID uint) (*models.Bill, error)
	PayBillFull(userID, billID uint) (*BillPaymentResult, error)
	PayBillPartial(userID, billID uint, amount int64) (*BillPaymentResult, error)
	PayAllBills(userID uint) (*PayAllResult, error)
	DeleteBill(userID, billID uint) error
	// MarkOverdueBills flips pending bills past their due date to overdue
	// for one user. Idempotent; also run lazily by GetUserBills.
	MarkOverdueBills(userID uint) (int64, error)
	// MarkAllOverdueBills is the batch variant used by the sweep job.
	MarkAllOverdueBills() (int64, error)
}

// BudgetServicer defines the contract for budget tracking.
type BudgetServicer interface {
	CreateBudget(userID, categoryID uint, name string, allocatedAmount int64, periodStart, periodEnd time.Time, alertThreshold float64) (*models.Budget, error)
	UpdateBudget(userID, budgetID, categoryID uint, name string, allocatedAmount int64, periodStart, periodEnd time.Time, alertThreshold float64) (*models.Budget, error)
	// GetUserBudgets recomputes each budget's spent amount from the
	// transaction log and persists it before returning.
	GetUserBudgets(userID uint) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	// ResetBudgets zeroes spent_amount on all of the user's budgets without
	// touching the transaction log; the next list view recomputes the true
	// value.
	ResetBudgets(userID uint) error
}

// SavingsAccountInput carries the fields accepted when creating or editing
// a savings account.
type SavingsAccountInput struct {
	Name              string
	TargetAmount      int64
	TargetDate        *time.Time
	Description       string
	Color             string
	Icon              string
	AutoSaveAmount    int64
	ReminderFrequency models.ReminderFrequency
}

// SavingsServicer defines the contract for savings goals.
type SavingsServicer interface {
	CreateAccount(userID uint, in SavingsAccountInput) (*models.SavingsAccount, error)
	UpdateAccount(userID, accountID uint, in SavingsAccountInput) (*models.SavingsAccount, error)
	GetUserAccounts(userID uint) ([]models.SavingsAccount, error)
	GetAccountByID(userID, accountID uint) (*models.SavingsAccount, error)
	Deposit(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error)
	Withdraw(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error)
	DeleteAccount(userID, accountID uint) error
	// ProcessAutoSaves deposits auto_save_amount into every eligible account
	// across all users. One account's failure is logged and does not abort
	// the rest of the sweep. Returns the number of deposits made.
	ProcessAutoSaves() (int, error)
	// ProcessReminders emits progress reminders and deadline warnings,
	// throttled per account. Returns the number of reminders sent.
	ProcessReminders() (int, error)
}

// NotificationServicer defines the contract for the notification side channel.
type NotificationServicer interface {
	GetUserNotifications(userID uint, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error)
	UnreadCount(userID uint) (int64, error)
	MarkRead(userID, notificationID uint) error
	MarkAllRead(userID uint) error
}

// SettingsServicer defines the contract for per-user preferences the ledger
// core depends on.
type SettingsServicer interface {
	GetSettings(userID uint) (map[string]string, error)
	SetSetting(userID uint, key, value string) error
	// Currency returns the user's display currency, falling back to the
	// configured default.
	Currency(userID uint) string
	// LowBalanceThreshold returns the low-balance alert threshold in cents.
	LowBalanceThreshold(userID uint) int64
}
