package testutil_test

import (
	"testing"
	"time"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{
		"users", "wallet_balances", "categories", "transactions", "bills",
		"budgets", "savings_accounts", "savings_transactions", "savings_reminders",
		"notifications", "settings",
	} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	wallet := testutil.CreateTestWalletWithBalance(t, db, user.ID, 5000)
	if wallet.CurrentBalance != 5000 {
		t.Errorf("expected balance 5000, got %d", wallet.CurrentBalance)
	}
	if wallet.CurrentBalance != wallet.TotalIncome-wallet.TotalExpenses {
		t.Error("fixture wallet should satisfy the conservation identity")
	}

	category := testutil.CreateTestCategory(t, db, user.ID)
	if category.UserID == nil || *category.UserID != user.ID {
		t.Error("expected category owned by the user")
	}

	defaultCat := testutil.CreateTestDefaultCategory(t, db, "Utilities")
	if !defaultCat.IsDefault || defaultCat.UserID != nil {
		t.Error("expected a global default category")
	}

	bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 2500, time.Now().AddDate(0, 0, 7))
	if bill.Status != models.BillStatusPending || bill.RemainingBalance != 2500 {
		t.Errorf("expected pending bill with full balance, got %s/%d", bill.Status, bill.RemainingBalance)
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, category.ID, 10000)
	if budget.AllocatedAmount != 10000 {
		t.Errorf("expected budget allocation 10000, got %d", budget.AllocatedAmount)
	}

	goal := testutil.CreateTestSavingsAccount(t, db, user.ID, 50000)
	if goal.Status != models.SavingsStatusActive || goal.CurrentAmount != 0 {
		t.Errorf("expected active zero-balance goal, got %s/%d", goal.Status, goal.CurrentAmount)
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeIncome, 1000)
	if tx.Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", tx.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := apperrors.WithMessage(apperrors.ErrBillNotFound, "custom message")
	testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
