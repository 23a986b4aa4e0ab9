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

const autoSaveDescription = "Auto-save deposit"

// savingsService manages savings goals. Every savings posting moves money
// between the wallet and the account in one store transaction, so the sum
// of wallet and savings balances is conserved.
type savingsService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB, settings SettingsServicer) SavingsServicer {
	return &savingsService{db: db, settings: settings}
}

func validateSavingsInput(in SavingsAccountInput) error {
	if in.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if in.TargetAmount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if in.AutoSaveAmount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "auto-save amount cannot be negative")
	}
	if in.TargetDate != nil && in.TargetDate.Before(time.Now()) {
		return apperrors.ErrTargetDateInPast
	}
	return nil
}

// CreateAccount opens a new savings goal with a zero balance.
func (s *savingsService) CreateAccount(userID uint, in SavingsAccountInput) (*models.SavingsAccount, error) {
	if err := validateSavingsInput(in); err != nil {
		return nil, err
	}

	account := models.SavingsAccount{
		UserID:            userID,
		Name:              in.Name,
		TargetAmount:      in.TargetAmount,
		TargetDate:        in.TargetDate,
		Description:       in.Description,
		Color:             in.Color,
		Icon:              in.Icon,
		AutoSaveAmount:    in.AutoSaveAmount,
		ReminderFrequency: in.ReminderFrequency,
		Status:            models.SavingsStatusActive,
	}
	if account.ReminderFrequency == "" {
		account.ReminderFrequency = models.ReminderWeekly
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount edits a savings goal's settings. The balance can only move
// through deposits and withdrawals.
func (s *savingsService) UpdateAccount(userID, accountID uint, in SavingsAccountInput) (*models.SavingsAccount, error) {
	if err := validateSavingsInput(in); err != nil {
		return nil, err
	}

	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":               in.Name,
		"target_amount":      in.TargetAmount,
		"target_date":        in.TargetDate,
		"description":        in.Description,
		"auto_save_amount":   in.AutoSaveAmount,
		"reminder_frequency": in.ReminderFrequency,
	}
	if in.Color != "" {
		updates["color"] = in.Color
	}
	if in.Icon != "" {
		updates["icon"] = in.Icon
	}
	if err := s.db.Model(account).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetAccountByID(userID, accountID)
}

// GetUserAccounts returns all of the user's savings goals.
func (s *savingsService) GetUserAccounts(userID uint) ([]models.SavingsAccount, error) {
	var accounts []models.SavingsAccount
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID returns a single savings account owned by the user.
func (s *savingsService) GetAccountByID(userID, accountID uint) (*models.SavingsAccount, error) {
	var account models.SavingsAccount
	err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSavingsAccountNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// deposit moves money from the wallet into the account inside the caller's
// store transaction.
func deposit(tx *gorm.DB, account *models.SavingsAccount, amount int64, description, currency string) error {
	wallet, err := lockWallet(tx, account.UserID)
	if err != nil {
		return err
	}
	if wallet.CurrentBalance < amount {
		return apperrors.WithMessage(apperrors.ErrInsufficientWalletBalance,
			fmt.Sprintf("wallet balance is %s", formatMoney(wallet.CurrentBalance, currency)))
	}

	categoryID, err := savingsTransferCategoryID(tx)
	if err != nil {
		return err
	}

	newWalletBalance := wallet.CurrentBalance - amount
	posting := models.Transaction{
		UserID:          account.UserID,
		CategoryID:      categoryID,
		Type:            models.TransactionTypeExpense,
		Amount:          amount,
		Description:     fmt.Sprintf("Transfer to %s", account.Name),
		PaymentMethod:   models.PaymentMethodBank,
		BalanceAfter:    newWalletBalance,
		ReferenceNumber: refnum.New(),
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&posting).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	wallet.CurrentBalance = newWalletBalance
	wallet.TotalExpenses += amount
	if err := saveWallet(tx, wallet); err != nil {
		return err
	}

	before := account.CurrentAmount
	after := before + amount
	savingsTx := models.SavingsTransaction{
		SavingsAccountID: account.ID,
		UserID:           account.UserID,
		Amount:           amount,
		TransactionType:  models.SavingsDeposit,
		Description:      description,
		BalanceBefore:    before,
		BalanceAfter:     after,
	}
	if err := tx.Create(&savingsTx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Model(account).Update("current_amount", after).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	account.CurrentAmount = after

	if before < account.TargetAmount && after >= account.TargetAmount {
		err := notify(tx, account.UserID, "Savings Goal Reached",
			fmt.Sprintf("%s has reached its target of %s.", account.Name, formatMoney(account.TargetAmount, currency)),
			models.NotificationSuccess, nil)
		if err != nil {
			return err
		}
	}
	return nil
}

// withdraw moves money from the account back into the wallet inside the
// caller's store transaction.
func withdraw(tx *gorm.DB, account *models.SavingsAccount, amount int64, description, currency string) error {
	if amount > account.CurrentAmount {
		return apperrors.WithMessage(apperrors.ErrInsufficientSavings,
			fmt.Sprintf("savings balance is %s", formatMoney(account.CurrentAmount, currency)))
	}

	wallet, err := lockWallet(tx, account.UserID)
	if err != nil {
		return err
	}

	categoryID, err := savingsTransferCategoryID(tx)
	if err != nil {
		return err
	}

	newWalletBalance := wallet.CurrentBalance + amount
	posting := models.Transaction{
		UserID:          account.UserID,
		CategoryID:      categoryID,
		Type:            models.TransactionTypeIncome,
		Amount:          amount,
		Description:     fmt.Sprintf("Transfer from %s", account.Name),
		PaymentMethod:   models.PaymentMethodBank,
		BalanceAfter:    newWalletBalance,
		ReferenceNumber: refnum.New(),
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&posting).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	wallet.CurrentBalance = newWalletBalance
	wallet.TotalIncome += amount
	if err := saveWallet(tx, wallet); err != nil {
		return err
	}

	before := account.CurrentAmount
	after := before - amount
	savingsTx := models.SavingsTransaction{
		SavingsAccountID: account.ID,
		UserID:           account.UserID,
		Amount:           amount,
		TransactionType:  models.SavingsWithdrawal,
		Description:      description,
		BalanceBefore:    before,
		BalanceAfter:     after,
	}
	if err := tx.Create(&savingsTx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Model(account).Update("current_amount", after).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	account.CurrentAmount = after
	return nil
}

// Deposit moves amount from the user's wallet into the savings account.
func (s *savingsService) Deposit(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit amount must be greater than zero")
	}

	currency := s.settings.Currency(userID)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		account, err := loadAccount(tx, userID, accountID)
		if err != nil {
			return err
		}
		if account.Status == models.SavingsStatusClosed {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "account is closed")
		}
		if description == "" {
			description = fmt.Sprintf("Deposit to %s", account.Name)
		}
		return deposit(tx, account, amount, description, currency)
	})
	if err != nil {
		return nil, err
	}
	return s.GetAccountByID(userID, accountID)
}

// Withdraw moves amount from the savings account back into the wallet.
func (s *savingsService) Withdraw(userID, accountID uint, amount int64, description string) (*models.SavingsAccount, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "withdrawal amount must be greater than zero")
	}

	currency := s.settings.Currency(userID)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		account, err := loadAccount(tx, userID, accountID)
		if err != nil {
			return err
		}
		if account.Status == models.SavingsStatusClosed {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "account is closed")
		}
		if description == "" {
			description = fmt.Sprintf("Withdrawal from %s", account.Name)
		}
		return withdraw(tx, account, amount, description, currency)
	})
	if err != nil {
		return nil, err
	}
	return s.GetAccountByID(userID, accountID)
}

// DeleteAccount closes out a savings goal. Any remaining balance is
// returned to the wallet before the account and its history are removed.
func (s *savingsService) DeleteAccount(userID, accountID uint) error {
	currency := s.settings.Currency(userID)
	return s.db.Transaction(func(tx *gorm.DB) error {
		account, err := loadAccount(tx, userID, accountID)
		if err != nil {
			return err
		}

		if account.CurrentAmount > 0 {
			desc := fmt.Sprintf("Closing %s", account.Name)
			if err := withdraw(tx, account, account.CurrentAmount, desc, currency); err != nil {
				return err
			}
		}

		err = tx.Where("savings_account_id = ?", account.ID).Delete(&models.SavingsTransaction{}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		err = tx.Where("savings_account_id = ?", account.ID).Delete(&models.SavingsReminder{}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func loadAccount(tx *gorm.DB, userID, accountID uint) (*models.SavingsAccount, error) {
	var account models.SavingsAccount
	err := tx.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSavingsAccountNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// frequencyElapsed reports whether a full reminder period has passed since
// the last occurrence.
func frequencyElapsed(last time.Time, freq models.ReminderFrequency) bool {
	var next time.Time
	switch freq {
	case models.ReminderDaily:
		next = last.AddDate(0, 0, 1)
	case models.ReminderMonthly:
		next = last.AddDate(0, 1, 0)
	default:
		next = last.AddDate(0, 0, 7)
	}
	return !time.Now().Before(next)
}

// ProcessAutoSaves deposits each active account's auto-save amount on its
// reminder frequency schedule. Accounts that already reached their target
// are skipped. One failing account does not abort the rest.
func (s *savingsService) ProcessAutoSaves() (int, error) {
	var accounts []models.SavingsAccount
	err := s.db.Where("status = ? AND auto_save_amount > 0 AND current_amount < target_amount",
		models.SavingsStatusActive).Find(&accounts).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	saved := 0
	for i := range accounts {
		account := &accounts[i]

		var last models.SavingsTransaction
		err := s.db.Where("savings_account_id = ? AND transaction_type = ? AND description = ?",
			account.ID, models.SavingsDeposit, autoSaveDescription).
			Order("created_at DESC").First(&last).Error
		if err == nil && !frequencyElapsed(last.CreatedAt, account.ReminderFrequency) {
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return saved, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		currency := s.settings.Currency(account.UserID)
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return deposit(tx, account, account.AutoSaveAmount, autoSaveDescription, currency)
		})
		if err != nil {
			logger.Get().Warnw("auto-save skipped",
				"account_id", account.ID, "user_id", account.UserID, "error", err)
			continue
		}
		saved++
	}
	return saved, nil
}

// ProcessReminders sends progress reminders for active goals still short of
// their target, throttled per account by its reminder frequency, and warns
// when a target date is less than a week away.
func (s *savingsService) ProcessReminders() (int, error) {
	var accounts []models.SavingsAccount
	err := s.db.Where("status = ? AND current_amount < target_amount", models.SavingsStatusActive).
		Find(&accounts).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sent := 0
	for i := range accounts {
		account := &accounts[i]
		currency := s.settings.Currency(account.UserID)

		var last models.SavingsReminder
		err := s.db.Where("savings_account_id = ?", account.ID).
			Order("reminder_date DESC").First(&last).Error
		due := errors.Is(err, gorm.ErrRecordNotFound) ||
			(err == nil && frequencyElapsed(last.ReminderDate, account.ReminderFrequency))
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return sent, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if due {
			pct := float64(account.CurrentAmount) / float64(account.TargetAmount) * 100
			message := fmt.Sprintf("%s is at %s of %s (%.0f%%). Keep saving!",
				account.Name, formatMoney(account.CurrentAmount, currency),
				formatMoney(account.TargetAmount, currency), pct)

			err := s.db.Transaction(func(tx *gorm.DB) error {
				reminder := models.SavingsReminder{
					SavingsAccountID: account.ID,
					UserID:           account.UserID,
					ReminderDate:     time.Now(),
					Message:          message,
					IsSent:           true,
				}
				if err := tx.Create(&reminder).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				return notify(tx, account.UserID, "Savings Reminder", message, models.NotificationInfo, nil)
			})
			if err != nil {
				logger.Get().Warnw("savings reminder skipped",
					"account_id", account.ID, "user_id", account.UserID, "error", err)
				continue
			}
			sent++
		}

		if err := s.warnDeadline(account, currency); err != nil {
			logger.Get().Warnw("deadline warning skipped",
				"account_id", account.ID, "user_id", account.UserID, "error", err)
		}
	}
	return sent, nil
}

// warnDeadline notifies every two days while a goal's target date is
// within seven days and the goal is unmet. Throttling leans on the
// notification log rather than a dedicated marker.
func (s *savingsService) warnDeadline(account *models.SavingsAccount, currency string) error {
	if account.TargetDate == nil {
		return nil
	}
	now := time.Now()
	if account.TargetDate.Before(now) || account.TargetDate.After(now.AddDate(0, 0, 7)) {
		return nil
	}

	var recent int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND title = ? AND message LIKE ? AND created_at >= ?",
			account.UserID, "Savings Deadline Approaching", "%"+account.Name+"%", now.AddDate(0, 0, -2)).
		Count(&recent).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if recent > 0 {
		return nil
	}

	shortfall := account.TargetAmount - account.CurrentAmount
	return notify(s.db, account.UserID, "Savings Deadline Approaching",
		fmt.Sprintf("%s is due on %s and still needs %s.",
			account.Name, account.TargetDate.Format("2 Jan 2006"), formatMoney(shortfall, currency)),
		models.NotificationWarning, nil)
}
