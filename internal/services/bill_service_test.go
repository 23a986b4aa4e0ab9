package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/testutil"
)

func newBillService(db *gorm.DB) BillServicer {
	return NewBillService(db, NewSettingsService(db))
}

func TestCreateBill(t *testing.T) {
	t.Run("creates_pending_with_full_remaining", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		bill, err := billSvc.CreateBill(user.ID, BillInput{
			Name:       "Electricity",
			Amount:     45000,
			CategoryID: category.ID,
			DueDate:    time.Now().AddDate(0, 0, 14),
		})
		testutil.AssertNoError(t, err)

		if bill.Status != models.BillStatusPending {
			t.Errorf("expected status pending, got %s", bill.Status)
		}
		if bill.RemainingBalance != 45000 {
			t.Errorf("expected remaining balance 45000, got %d", bill.RemainingBalance)
		}
		if bill.Priority != models.PriorityMedium {
			t.Errorf("expected default priority medium, got %s", bill.Priority)
		}
	})

	t.Run("duplicate_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		due := time.Now().AddDate(0, 0, 14)
		in := BillInput{Name: "Electricity", Amount: 45000, CategoryID: category.ID, DueDate: due}
		_, err := billSvc.CreateBill(user.ID, in)
		testutil.AssertNoError(t, err)

		_, err = billSvc.CreateBill(user.ID, in)
		testutil.AssertAppError(t, err, "DUPLICATE_BILL")
	})

	t.Run("same_name_different_amount_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		due := time.Now().AddDate(0, 0, 14)
		_, err := billSvc.CreateBill(user.ID, BillInput{Name: "Water", Amount: 12000, CategoryID: category.ID, DueDate: due})
		testutil.AssertNoError(t, err)
		_, err = billSvc.CreateBill(user.ID, BillInput{Name: "Water", Amount: 15000, CategoryID: category.ID, DueDate: due})
		testutil.AssertNoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := billSvc.CreateBill(user.ID, BillInput{Name: "", Amount: 1000, CategoryID: category.ID, DueDate: time.Now()})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = billSvc.CreateBill(user.ID, BillInput{Name: "Rent", Amount: 0, CategoryID: category.ID, DueDate: time.Now()})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestPayBillFull(t *testing.T) {
	t.Run("settles_bill_and_debits_wallet", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 7))

		result, err := billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		if result.Status != models.BillStatusPaid {
			t.Errorf("expected status paid, got %s", result.Status)
		}
		if result.AmountPaid != 40000 {
			t.Errorf("expected amount paid 40000, got %d", result.AmountPaid)
		}
		if result.RemainingBalance != 0 {
			t.Errorf("expected remaining 0, got %d", result.RemainingBalance)
		}
		if result.NewWalletBalance != 60000 {
			t.Errorf("expected wallet balance 60000, got %d", result.NewWalletBalance)
		}

		// The payment lands in the ledger as an expense tied to the bill.
		var posting models.Transaction
		testutil.AssertNoError(t, db.Where("user_id = ? AND bill_id = ?", user.ID, bill.ID).First(&posting).Error)
		if posting.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense posting, got %s", posting.Type)
		}
		if posting.Amount != 40000 {
			t.Errorf("expected posting amount 40000, got %d", posting.Amount)
		}

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Notification{}).
			Where("user_id = ? AND title = ?", user.ID, "Bill Paid").Count(&count).Error)
		if count != 1 {
			t.Errorf("expected 1 bill paid notification, got %d", count)
		}
	})

	t.Run("insufficient_funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 10000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 7))

		_, err := billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		var unchanged models.Bill
		testutil.AssertNoError(t, db.First(&unchanged, bill.ID).Error)
		if unchanged.Status != models.BillStatusPending {
			t.Errorf("expected bill still pending, got %s", unchanged.Status)
		}
	})

	t.Run("paid_bill_not_payable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 7))

		_, err := billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		_, err = billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertAppError(t, err, "BILL_NOT_PAYABLE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := billSvc.PayBillFull(user.ID, 99999)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestPayBillPartial(t *testing.T) {
	t.Run("partial_then_settle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 7))

		result, err := billSvc.PayBillPartial(user.ID, bill.ID, 15000)
		testutil.AssertNoError(t, err)
		if result.Status != models.BillStatusPartial {
			t.Errorf("expected status partial, got %s", result.Status)
		}
		if result.RemainingBalance != 25000 {
			t.Errorf("expected remaining 25000, got %d", result.RemainingBalance)
		}

		// Paying exactly the remaining amount settles the bill.
		result, err = billSvc.PayBillPartial(user.ID, bill.ID, 25000)
		testutil.AssertNoError(t, err)
		if result.Status != models.BillStatusPaid {
			t.Errorf("expected status paid, got %s", result.Status)
		}
		if result.RemainingBalance != 0 {
			t.Errorf("expected remaining 0, got %d", result.RemainingBalance)
		}
		if result.NewWalletBalance != 60000 {
			t.Errorf("expected wallet balance 60000, got %d", result.NewWalletBalance)
		}
	})

	t.Run("overpayment_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 7))

		_, err := billSvc.PayBillPartial(user.ID, bill.ID, 50000)
		testutil.AssertAppError(t, err, "INVALID_PAYMENT_AMOUNT")
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 7))

		_, err := billSvc.PayBillPartial(user.ID, bill.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_PAYMENT_AMOUNT")
	})
}

func TestRecurringBills(t *testing.T) {
	t.Run("roll_forward_on_settlement", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 500000)

		due := time.Now().AddDate(0, 0, 3)
		bill, err := billSvc.CreateBill(user.ID, BillInput{
			Name:            "Internet",
			Amount:          30000,
			CategoryID:      category.ID,
			DueDate:         due,
			IsRecurring:     true,
			RecurringPeriod: models.RecurringMonthly,
		})
		testutil.AssertNoError(t, err)

		_, err = billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		var next models.Bill
		err = db.Where("user_id = ? AND name = ? AND status = ?", user.ID, "Internet", models.BillStatusPending).
			First(&next).Error
		testutil.AssertNoError(t, err)
		wantDue := due.AddDate(0, 1, 0)
		if next.DueDate.Format("2006-01-02") != wantDue.Format("2006-01-02") {
			t.Errorf("expected next due date %s, got %s",
				wantDue.Format("2006-01-02"), next.DueDate.Format("2006-01-02"))
		}
		if next.RemainingBalance != 30000 {
			t.Errorf("expected next instance remaining 30000, got %d", next.RemainingBalance)
		}
	})

	t.Run("roll_forward_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 500000)

		due := time.Now().AddDate(0, 0, 3)
		in := BillInput{
			Name:            "Internet",
			Amount:          30000,
			CategoryID:      category.ID,
			DueDate:         due,
			IsRecurring:     true,
			RecurringPeriod: models.RecurringMonthly,
		}
		bill, err := billSvc.CreateBill(user.ID, in)
		testutil.AssertNoError(t, err)
		_, err = billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		// Creating the same bill again for the next cycle must not
		// duplicate the instance the roll-forward already created.
		in.DueDate = due.AddDate(0, 1, 0)
		_, err = billSvc.CreateBill(user.ID, in)
		testutil.AssertAppError(t, err, "DUPLICATE_BILL")

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Bill{}).
			Where("user_id = ? AND name = ? AND status = ?", user.ID, "Internet", models.BillStatusPending).
			Count(&count).Error)
		if count != 1 {
			t.Errorf("expected exactly 1 pending instance, got %d", count)
		}
	})
}

func TestPayAllBills(t *testing.T) {
	t.Run("pays_every_payable_bill", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, 5))
		testutil.CreateTestBill(t, db, user.ID, category.ID, 20000, time.Now().AddDate(0, 0, 10))

		result, err := billSvc.PayAllBills(user.ID)
		testutil.AssertNoError(t, err)
		if result.PaidCount != 2 {
			t.Errorf("expected 2 bills paid, got %d", result.PaidCount)
		}
		if result.TotalAmount != 50000 {
			t.Errorf("expected total 50000, got %d", result.TotalAmount)
		}
		if result.NewWalletBalance != 50000 {
			t.Errorf("expected wallet balance 50000, got %d", result.NewWalletBalance)
		}

		var pending int64
		testutil.AssertNoError(t, db.Model(&models.Bill{}).
			Where("user_id = ? AND status <> ?", user.ID, models.BillStatusPaid).Count(&pending).Error)
		if pending != 0 {
			t.Errorf("expected no unpaid bills, got %d", pending)
		}
	})

	t.Run("all_or_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 40000)
		testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, 5))
		testutil.CreateTestBill(t, db, user.ID, category.ID, 20000, time.Now().AddDate(0, 0, 10))

		_, err := billSvc.PayAllBills(user.ID)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		// Neither bill was touched, even though the first alone was affordable.
		var paid int64
		testutil.AssertNoError(t, db.Model(&models.Bill{}).
			Where("user_id = ? AND status = ?", user.ID, models.BillStatusPaid).Count(&paid).Error)
		if paid != 0 {
			t.Errorf("expected no bills paid, got %d", paid)
		}
	})

	t.Run("partial_bills_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		partial := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 5))
		testutil.CreateTestBill(t, db, user.ID, category.ID, 20000, time.Now().AddDate(0, 0, 10))

		_, err := billSvc.PayBillPartial(user.ID, partial.ID, 15000)
		testutil.AssertNoError(t, err)

		result, err := billSvc.PayAllBills(user.ID)
		testutil.AssertNoError(t, err)
		if result.PaidCount != 1 {
			t.Errorf("expected only the pending bill paid, got %d", result.PaidCount)
		}
		if result.TotalAmount != 20000 {
			t.Errorf("expected total 20000, got %d", result.TotalAmount)
		}

		fresh, err := billSvc.GetBillByID(user.ID, partial.ID)
		testutil.AssertNoError(t, err)
		if fresh.Status != models.BillStatusPartial || fresh.RemainingBalance != 25000 {
			t.Errorf("expected partial bill untouched, got status %s remaining %d",
				fresh.Status, fresh.RemainingBalance)
		}
	})

	t.Run("nothing_to_pay", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)

		_, err := billSvc.PayAllBills(user.ID)
		testutil.AssertAppError(t, err, "NO_BILLS_TO_PAY")
	})
}

func TestMarkOverdueBills(t *testing.T) {
	t.Run("flips_past_due_pending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		pastDue := testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, -2))
		future := testutil.CreateTestBill(t, db, user.ID, category.ID, 20000, time.Now().AddDate(0, 0, 10))

		count, err := billSvc.MarkOverdueBills(user.ID)
		testutil.AssertNoError(t, err)
		if count != 1 {
			t.Errorf("expected 1 bill flipped, got %d", count)
		}

		var flipped models.Bill
		testutil.AssertNoError(t, db.First(&flipped, pastDue.ID).Error)
		if flipped.Status != models.BillStatusOverdue {
			t.Errorf("expected overdue, got %s", flipped.Status)
		}

		var untouched models.Bill
		testutil.AssertNoError(t, db.First(&untouched, future.ID).Error)
		if untouched.Status != models.BillStatusPending {
			t.Errorf("expected future bill still pending, got %s", untouched.Status)
		}

		var alerts int64
		testutil.AssertNoError(t, db.Model(&models.Notification{}).
			Where("user_id = ? AND title = ?", user.ID, "Bill Overdue").Count(&alerts).Error)
		if alerts != 1 {
			t.Errorf("expected 1 overdue notification, got %d", alerts)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, -2))

		_, err := billSvc.MarkOverdueBills(user.ID)
		testutil.AssertNoError(t, err)
		count, err := billSvc.MarkOverdueBills(user.ID)
		testutil.AssertNoError(t, err)
		if count != 0 {
			t.Errorf("expected second sweep to flip nothing, got %d", count)
		}
	})

	t.Run("overdue_bill_remains_payable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, -2))

		_, err := billSvc.MarkOverdueBills(user.ID)
		testutil.AssertNoError(t, err)

		result, err := billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)
		if result.Status != models.BillStatusPaid {
			t.Errorf("expected paid, got %s", result.Status)
		}
	})
}

func TestUpdateBill(t *testing.T) {
	t.Run("pending_amount_change_resets_remaining", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, 5))

		updated, err := billSvc.UpdateBill(user.ID, bill.ID, BillInput{
			Name:       bill.Name,
			Amount:     50000,
			CategoryID: category.ID,
			DueDate:    bill.DueDate,
		})
		testutil.AssertNoError(t, err)
		if updated.RemainingBalance != 50000 {
			t.Errorf("expected remaining 50000, got %d", updated.RemainingBalance)
		}
	})

	t.Run("partial_amount_change_shifts_remaining", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 5))

		_, err := billSvc.PayBillPartial(user.ID, bill.ID, 15000)
		testutil.AssertNoError(t, err)

		// Raising the amount by 10000 raises the remaining by the same delta.
		updated, err := billSvc.UpdateBill(user.ID, bill.ID, BillInput{
			Name:       bill.Name,
			Amount:     50000,
			CategoryID: category.ID,
			DueDate:    bill.DueDate,
		})
		testutil.AssertNoError(t, err)
		if updated.RemainingBalance != 35000 {
			t.Errorf("expected remaining 35000, got %d", updated.RemainingBalance)
		}
	})

	t.Run("paid_bill_not_editable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, 5))
		_, err := billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		_, err = billSvc.UpdateBill(user.ID, bill.ID, BillInput{
			Name:       bill.Name,
			Amount:     50000,
			CategoryID: category.ID,
			DueDate:    bill.DueDate,
		})
		testutil.AssertAppError(t, err, "BILL_NOT_PAYABLE")
	})
}

func TestDeleteBill(t *testing.T) {
	t.Run("cascades_postings_and_notifications", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 100000)
		bill := testutil.CreateTestBill(t, db, user.ID, category.ID, 40000, time.Now().AddDate(0, 0, 5))
		unrelated := testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeExpense, 5000)

		_, err := billSvc.PayBillFull(user.ID, bill.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, billSvc.DeleteBill(user.ID, bill.ID))

		var postings int64
		testutil.AssertNoError(t, db.Model(&models.Transaction{}).
			Where("bill_id = ?", bill.ID).Count(&postings).Error)
		if postings != 0 {
			t.Errorf("expected bill payment postings deleted, got %d", postings)
		}

		// Postings not tied to the bill are untouched.
		testutil.AssertNoError(t, db.First(&models.Transaction{}, unrelated.ID).Error)

		var notes int64
		testutil.AssertNoError(t, db.Model(&models.Notification{}).
			Where("related_bill_id = ?", bill.ID).Count(&notes).Error)
		if notes != 0 {
			t.Errorf("expected bill notifications removed, got %d", notes)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)

		err := billSvc.DeleteBill(user.ID, 99999)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestGetUserBills(t *testing.T) {
	t.Run("stats_by_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestWalletWithBalance(t, db, user.ID, 1000000)

		testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, 5))
		testutil.CreateTestBill(t, db, user.ID, category.ID, 20000, time.Now().AddDate(0, 0, -3))
		partial := testutil.CreateTestBill(t, db, user.ID, category.ID, 50000, time.Now().AddDate(0, 0, 8))
		paid := testutil.CreateTestBill(t, db, user.ID, category.ID, 10000, time.Now().AddDate(0, 0, 9))

		_, err := billSvc.PayBillPartial(user.ID, partial.ID, 20000)
		testutil.AssertNoError(t, err)
		_, err = billSvc.PayBillFull(user.ID, paid.ID)
		testutil.AssertNoError(t, err)

		bills, stats, err := billSvc.GetUserBills(user.ID, BillFilter{})
		testutil.AssertNoError(t, err)
		if len(bills) != 4 {
			t.Errorf("expected 4 bills, got %d", len(bills))
		}
		if stats.PendingCount != 1 || stats.PartialCount != 1 || stats.OverdueCount != 1 || stats.PaidCount != 1 {
			t.Errorf("unexpected status counts: %+v", stats)
		}
		if stats.PendingAmount != 30000 {
			t.Errorf("expected pending amount 30000, got %d", stats.PendingAmount)
		}
		if stats.PartialAmount != 30000 {
			t.Errorf("expected partial amount 30000, got %d", stats.PartialAmount)
		}
		if stats.OverdueAmount != 20000 {
			t.Errorf("expected overdue amount 20000, got %d", stats.OverdueAmount)
		}
		if stats.PaidThisMonth != 30000 {
			t.Errorf("expected paid this month 30000, got %d", stats.PaidThisMonth)
		}
	})

	t.Run("status_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		billSvc := newBillService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestBill(t, db, user.ID, category.ID, 30000, time.Now().AddDate(0, 0, 5))
		testutil.CreateTestBill(t, db, user.ID, category.ID, 20000, time.Now().AddDate(0, 0, -3))

		overdue := models.BillStatusOverdue
		bills, _, err := billSvc.GetUserBills(user.ID, BillFilter{Status: &overdue})
		testutil.AssertNoError(t, err)
		if len(bills) != 1 {
			t.Errorf("expected 1 overdue bill, got %d", len(bills))
		}
	})
}
