package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dennismwa/luidigitals/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		FullName: fmt.Sprintf("Test User %d", nextID()),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestWallet creates a wallet with zero balance.
func CreateTestWallet(t *testing.T, db *gorm.DB, userID uint) *models.WalletBalance {
	t.Helper()
	return CreateTestWalletWithBalance(t, db, userID, 0)
}

// CreateTestWalletWithBalance creates a wallet with the given balance (in cents).
// Total income is set to the balance so the conservation identity holds.
func CreateTestWalletWithBalance(t *testing.T, db *gorm.DB, userID uint, balance int64) *models.WalletBalance {
	t.Helper()

	wallet := &models.WalletBalance{
		UserID:         userID,
		CurrentBalance: balance,
		TotalIncome:    balance,
	}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// CreateTestCategory creates a category owned by the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: &userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Color:  "#6c757d",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestDefaultCategory creates a global default category.
func CreateTestDefaultCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:      name,
		Color:     "#6c757d",
		IsDefault: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test default category: %v", err)
	}
	return category
}

// CreateTestBill creates a pending bill with the given amount (in cents) and due date.
func CreateTestBill(t *testing.T, db *gorm.DB, userID, categoryID uint, amount int64, dueDate time.Time) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:           userID,
		CategoryID:       categoryID,
		Name:             fmt.Sprintf("Test Bill %d", nextID()),
		Amount:           amount,
		RemainingBalance: amount,
		DueDate:          dueDate,
		Status:           models.BillStatusPending,
		RecurringPeriod:  models.RecurringMonthly,
		Priority:         models.PriorityMedium,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestBudget creates a budget covering the current month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID uint, allocated int64) *models.Budget {
	t.Helper()

	now := time.Now()
	budget := &models.Budget{
		UserID:          userID,
		CategoryID:      categoryID,
		Name:            fmt.Sprintf("Test Budget %d", nextID()),
		AllocatedAmount: allocated,
		PeriodStart:     now.AddDate(0, 0, -7),
		PeriodEnd:       now.AddDate(0, 0, 21),
		AlertThreshold:  80,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestSavingsAccount creates an active savings account with the given target (in cents).
func CreateTestSavingsAccount(t *testing.T, db *gorm.DB, userID uint, target int64) *models.SavingsAccount {
	t.Helper()

	account := &models.SavingsAccount{
		UserID:            userID,
		Name:              fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:      target,
		ReminderFrequency: models.ReminderWeekly,
		Status:            models.SavingsStatusActive,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test savings account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a posting of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID uint, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		CategoryID:      categoryID,
		Type:            txType,
		Amount:          amount,
		Description:     fmt.Sprintf("Test Transaction %d", nextID()),
		PaymentMethod:   models.PaymentMethodCash,
		TransactionDate: time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
