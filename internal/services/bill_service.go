package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/logger"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/refnum"
)

// billService manages the bill lifecycle: creation, payments against the
// wallet, overdue sweeps and recurring roll-forward.
type billService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB, settings SettingsServicer) BillServicer {
	return &billService{db: db, settings: settings}
}

func validateBillInput(in BillInput) error {
	if in.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "bill name is required")
	}
	if in.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "bill amount must be greater than zero")
	}
	if in.DueDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}
	return nil
}

// billExists reports whether an unpaid bill with the same identity already
// exists. Guards both manual double-submission and recurring roll-forward.
func billExists(tx *gorm.DB, userID uint, name string, amount int64, dueDate time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Bill{}).
		Where("user_id = ? AND name = ? AND amount = ? AND due_date = ? AND status = ?",
			userID, name, amount, dueDate, models.BillStatusPending).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// CreateBill records a new payable bill with its full amount outstanding.
func (s *billService) CreateBill(userID uint, in BillInput) (*models.Bill, error) {
	if err := validateBillInput(in); err != nil {
		return nil, err
	}

	var created models.Bill
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveCategory(tx, userID, in.CategoryID); err != nil {
			return err
		}

		exists, err := billExists(tx, userID, in.Name, in.Amount, in.DueDate)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDuplicateBill
		}

		created = models.Bill{
			UserID:           userID,
			CategoryID:       in.CategoryID,
			Name:             in.Name,
			Amount:           in.Amount,
			RemainingBalance: in.Amount,
			DueDate:          in.DueDate,
			Status:           models.BillStatusPending,
			IsRecurring:      in.IsRecurring,
			RecurringPeriod:  in.RecurringPeriod,
			AutoPay:          in.AutoPay,
			Priority:         in.Priority,
			ThresholdWarning: in.ThresholdWarning,
			Notes:            in.Notes,
		}
		if created.RecurringPeriod == "" {
			created.RecurringPeriod = models.RecurringMonthly
		}
		if created.Priority == "" {
			created.Priority = models.PriorityMedium
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBillByID(userID, created.ID)
}

// UpdateBill edits an unpaid bill. For a partially paid bill the remaining
// balance moves by the amount delta so payments already made keep counting.
func (s *billService) UpdateBill(userID, billID uint, in BillInput) (*models.Bill, error) {
	if err := validateBillInput(in); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		err := tx.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBillNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if bill.Status == models.BillStatusPaid {
			return apperrors.WithMessage(apperrors.ErrBillNotPayable, "paid bills cannot be edited")
		}

		if _, err := resolveCategory(tx, userID, in.CategoryID); err != nil {
			return err
		}

		remaining := in.Amount
		if bill.Status == models.BillStatusPartial {
			remaining = bill.RemainingBalance + (in.Amount - bill.Amount)
			if remaining <= 0 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput,
					"amount cannot be reduced below what has already been paid")
			}
		}

		updates := map[string]interface{}{
			"name":              in.Name,
			"amount":            in.Amount,
			"remaining_balance": remaining,
			"category_id":       in.CategoryID,
			"due_date":          in.DueDate,
			"is_recurring":      in.IsRecurring,
			"recurring_period":  in.RecurringPeriod,
			"auto_pay":          in.AutoPay,
			"priority":          in.Priority,
			"threshold_warning": in.ThresholdWarning,
			"notes":             in.Notes,
		}
		if err := tx.Model(&bill).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBillByID(userID, billID)
}

// GetUserBills sweeps overdue bills for the user, then returns the filtered
// list with status aggregates.
func (s *billService) GetUserBills(userID uint, filter BillFilter) ([]models.Bill, *BillStats, error) {
	if _, err := s.MarkOverdueBills(userID); err != nil {
		return nil, nil, err
	}

	query := s.db.Model(&models.Bill{}).Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	var bills []models.Bill
	err := query.Preload("Category").Order("due_date ASC, id ASC").Find(&bills).Error
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats, err := s.billStats(userID)
	if err != nil {
		return nil, nil, err
	}
	return bills, stats, nil
}

func (s *billService) billStats(userID uint) (*BillStats, error) {
	type statusRow struct {
		Status models.BillStatus
		Count  int64
		Amount int64
	}
	var rows []statusRow
	err := s.db.Model(&models.Bill{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(remaining_balance), 0) AS amount").
		Where("user_id = ?", userID).
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := &BillStats{}
	for _, row := range rows {
		switch row.Status {
		case models.BillStatusPending:
			stats.PendingCount = row.Count
			stats.PendingAmount = row.Amount
		case models.BillStatusPartial:
			stats.PartialCount = row.Count
			stats.PartialAmount = row.Amount
		case models.BillStatusOverdue:
			stats.OverdueCount = row.Count
			stats.OverdueAmount = row.Amount
		case models.BillStatusPaid:
			stats.PaidCount = row.Count
		}
	}

	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day())
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), monthStart.Day(), 0, 0, 0, 0, monthStart.Location())
	err = s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND bill_id IS NOT NULL AND type = ? AND transaction_date >= ?",
			userID, models.TransactionTypeExpense, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.PaidThisMonth).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stats, nil
}

// GetBillByID returns a single bill owned by the user.
func (s *billService) GetBillByID(userID, billID uint) (*models.Bill, error) {
	var bill models.Bill
	err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", billID, userID).
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBillNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// payBill applies one payment to a bill inside the caller's store
// transaction: posts the expense, moves the wallet, advances the bill's
// state and rolls a recurring bill forward when it settles.
func payBill(tx *gorm.DB, wallet *models.WalletBalance, bill *models.Bill, amount int64, currency string) error {
	newBalance := wallet.CurrentBalance - amount
	if newBalance < 0 {
		return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
			fmt.Sprintf("insufficient funds to pay %s: balance is %s",
				bill.Name, formatMoney(wallet.CurrentBalance, currency)))
	}

	posting := models.Transaction{
		UserID:          bill.UserID,
		CategoryID:      bill.CategoryID,
		BillID:          &bill.ID,
		Type:            models.TransactionTypeExpense,
		Amount:          amount,
		Description:     fmt.Sprintf("Payment for %s", bill.Name),
		PaymentMethod:   models.PaymentMethodBank,
		BalanceAfter:    newBalance,
		ReferenceNumber: refnum.New(),
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&posting).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	wallet.CurrentBalance = newBalance
	wallet.TotalExpenses += amount

	remaining := bill.RemainingBalance - amount
	status := models.BillStatusPartial
	if remaining == 0 {
		status = models.BillStatusPaid
	}
	err := tx.Model(bill).Updates(map[string]interface{}{
		"remaining_balance": remaining,
		"status":            status,
	}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	bill.RemainingBalance = remaining
	bill.Status = status

	if status == models.BillStatusPaid {
		err = notify(tx, bill.UserID, "Bill Paid",
			fmt.Sprintf("%s has been paid in full (%s).", bill.Name, formatMoney(amount, currency)),
			models.NotificationSuccess, &bill.ID)
		if err != nil {
			return err
		}
		if bill.IsRecurring {
			if err := rollBillForward(tx, bill); err != nil {
				return err
			}
		}
	} else {
		err = notify(tx, bill.UserID, "Partial Payment",
			fmt.Sprintf("Paid %s towards %s; %s remaining.",
				formatMoney(amount, currency), bill.Name, formatMoney(remaining, currency)),
			models.NotificationInfo, &bill.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// rollBillForward creates the next cycle of a recurring bill. The duplicate
// guard makes the roll-forward idempotent when a payment is retried.
func rollBillForward(tx *gorm.DB, bill *models.Bill) error {
	nextDue := bill.NextDueDate()
	exists, err := billExists(tx, bill.UserID, bill.Name, bill.Amount, nextDue)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	next := models.Bill{
		UserID:           bill.UserID,
		CategoryID:       bill.CategoryID,
		Name:             bill.Name,
		Amount:           bill.Amount,
		RemainingBalance: bill.Amount,
		DueDate:          nextDue,
		Status:           models.BillStatusPending,
		IsRecurring:      true,
		RecurringPeriod:  bill.RecurringPeriod,
		AutoPay:          bill.AutoPay,
		Priority:         bill.Priority,
		ThresholdWarning: bill.ThresholdWarning,
		Notes:            bill.Notes,
	}
	if err := tx.Create(&next).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// PayBillFull settles a bill's entire remaining balance from the wallet.
func (s *billService) PayBillFull(userID, billID uint) (*BillPaymentResult, error) {
	currency := s.settings.Currency(userID)

	var result BillPaymentResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		err := tx.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBillNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !bill.IsPayable() {
			return apperrors.ErrBillNotPayable
		}

		wallet, err := lockWallet(tx, userID)
		if err != nil {
			return err
		}

		amount := bill.RemainingBalance
		if err := payBill(tx, wallet, &bill, amount, currency); err != nil {
			return err
		}
		if err := saveWallet(tx, wallet); err != nil {
			return err
		}

		result = BillPaymentResult{
			BillID:           bill.ID,
			AmountPaid:       amount,
			RemainingBalance: bill.RemainingBalance,
			Status:           bill.Status,
			NewWalletBalance: wallet.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PayBillPartial pays part of a bill. Paying exactly the remaining balance
// settles the bill the same way a full payment does.
func (s *billService) PayBillPartial(userID, billID uint, amount int64) (*BillPaymentResult, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidPaymentAmount, "payment amount must be greater than zero")
	}

	currency := s.settings.Currency(userID)

	var result BillPaymentResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		err := tx.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBillNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !bill.IsPayable() {
			return apperrors.ErrBillNotPayable
		}
		if amount > bill.RemainingBalance {
			return apperrors.WithMessage(apperrors.ErrInvalidPaymentAmount,
				fmt.Sprintf("payment exceeds remaining balance of %s", formatMoney(bill.RemainingBalance, currency)))
		}

		wallet, err := lockWallet(tx, userID)
		if err != nil {
			return err
		}

		if err := payBill(tx, wallet, &bill, amount, currency); err != nil {
			return err
		}
		if err := saveWallet(tx, wallet); err != nil {
			return err
		}

		result = BillPaymentResult{
			BillID:           bill.ID,
			AmountPaid:       amount,
			RemainingBalance: bill.RemainingBalance,
			Status:           bill.Status,
			NewWalletBalance: wallet.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PayAllBills settles every pending and overdue bill in one atomic batch,
// oldest due date first. Partially paid bills are settled individually, not
// by the batch. The whole batch fails if the wallet cannot cover the total.
func (s *billService) PayAllBills(userID uint) (*PayAllResult, error) {
	currency := s.settings.Currency(userID)

	var result PayAllResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bills []models.Bill
		err := tx.Where("user_id = ? AND status IN ?", userID,
			[]models.BillStatus{models.BillStatusPending, models.BillStatusOverdue}).
			Order("due_date ASC, id ASC").Find(&bills).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(bills) == 0 {
			return apperrors.ErrNoBillsToPay
		}

		var total int64
		for _, bill := range bills {
			total += bill.RemainingBalance
		}

		wallet, err := lockWallet(tx, userID)
		if err != nil {
			return err
		}
		if wallet.CurrentBalance < total {
			return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
				fmt.Sprintf("paying all bills needs %s but balance is %s",
					formatMoney(total, currency), formatMoney(wallet.CurrentBalance, currency)))
		}

		for i := range bills {
			if err := payBill(tx, wallet, &bills[i], bills[i].RemainingBalance, currency); err != nil {
				return err
			}
		}
		if err := saveWallet(tx, wallet); err != nil {
			return err
		}

		result = PayAllResult{
			PaidCount:        len(bills),
			TotalAmount:      total,
			NewWalletBalance: wallet.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteBill removes a bill along with its payment postings and related
// notifications. The wallet aggregates are left untouched, so deleting a
// paid bill erases the postings without refunding the money.
func (s *billService) DeleteBill(userID, billID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		err := tx.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBillNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		err = tx.Where("bill_id = ?", bill.ID).Delete(&models.Transaction{}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		err = tx.Where("related_bill_id = ?", bill.ID).Delete(&models.Notification{}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&bill).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// MarkOverdueBills flips one user's past-due pending bills to overdue and
// notifies them. Safe to run repeatedly.
func (s *billService) MarkOverdueBills(userID uint) (int64, error) {
	return s.markOverdue(&userID)
}

// MarkAllOverdueBills is the batch variant used by the sweep job. It also
// emits due-soon warnings for bills inside their warning window.
func (s *billService) MarkAllOverdueBills() (int64, error) {
	flipped, err := s.markOverdue(nil)
	if err != nil {
		return 0, err
	}
	if err := s.warnDueSoon(); err != nil {
		logger.Get().Warnw("due-soon warning pass failed", "error", err)
	}
	return flipped, nil
}

func (s *billService) markOverdue(userID *uint) (int64, error) {
	var flipped int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("status = ? AND due_date < ?", models.BillStatusPending, time.Now())
		if userID != nil {
			query = query.Where("user_id = ?", *userID)
		}

		var bills []models.Bill
		if err := query.Find(&bills).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range bills {
			bill := &bills[i]
			err := tx.Model(bill).Update("status", models.BillStatusOverdue).Error
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			err = notify(tx, bill.UserID, "Bill Overdue",
				fmt.Sprintf("%s was due on %s and is now overdue.", bill.Name, bill.DueDate.Format("2 Jan 2006")),
				models.NotificationWarning, &bill.ID)
			if err != nil {
				return err
			}
			flipped++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return flipped, nil
}

// warnDueSoon notifies once per bill when its due date enters the bill's
// warning window.
func (s *billService) warnDueSoon() error {
	now := time.Now()
	var bills []models.Bill
	err := s.db.Where("status IN ? AND threshold_warning > 0",
		[]models.BillStatus{models.BillStatusPending, models.BillStatusPartial}).
		Find(&bills).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range bills {
		bill := &bills[i]
		windowStart := bill.DueDate.AddDate(0, 0, -int(bill.ThresholdWarning))
		if now.Before(windowStart) || now.After(bill.DueDate) {
			continue
		}

		var already int64
		err := s.db.Model(&models.Notification{}).
			Where("user_id = ? AND related_bill_id = ? AND title = ? AND created_at >= ?",
				bill.UserID, bill.ID, "Bill Due Soon", windowStart).
			Count(&already).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if already > 0 {
			continue
		}

		err = notify(s.db, bill.UserID, "Bill Due Soon",
			fmt.Sprintf("%s is due on %s.", bill.Name, bill.DueDate.Format("2 Jan 2006")),
			models.NotificationInfo, &bill.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
