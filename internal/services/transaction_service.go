package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/logger"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/pagination"
	"github.com/dennismwa/luidigitals/internal/refnum"
)

// transactionService posts wallet transactions and keeps the wallet
// aggregates and the per-row balance_after snapshots consistent.
type transactionService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, settings SettingsServicer) TransactionServicer {
	return &transactionService{db: db, settings: settings}
}

// signedAmount returns the effect of a posting on the wallet balance:
// positive for income, negative for expense.
func signedAmount(txType models.TransactionType, amount int64) int64 {
	if txType == models.TransactionTypeIncome {
		return amount
	}
	return -amount
}

func validatePosting(txType models.TransactionType, amount int64, paymentMethod models.PaymentMethod) error {
	switch txType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.ErrInvalidTransactionType
	}
	switch paymentMethod {
	case models.PaymentMethodCash, models.PaymentMethodBank, models.PaymentMethodMobileMoney, models.PaymentMethodCard:
	default:
		return apperrors.ErrInvalidPaymentMethod
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return nil
}

// resolveCategory loads a category the user may post against, inside the
// caller's store transaction.
func resolveCategory(tx *gorm.DB, userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := tx.Where("id = ? AND (user_id = ? OR is_default = ?)", categoryID, userID, true).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// AddTransaction posts a new transaction against the user's wallet. The
// wallet row, the new transaction row with its balance snapshot, and any
// triggered alerts are written atomically.
func (s *transactionService) AddTransaction(userID uint, txType models.TransactionType, amount int64, categoryID uint, paymentMethod models.PaymentMethod, description string) (*models.Transaction, error) {
	if err := validatePosting(txType, amount, paymentMethod); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	currency := s.settings.Currency(userID)
	lowBalance := s.settings.LowBalanceThreshold(userID)

	var created models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		category, err := resolveCategory(tx, userID, categoryID)
		if err != nil {
			return err
		}

		wallet, err := lockWallet(tx, userID)
		if err != nil {
			return err
		}

		newBalance := wallet.CurrentBalance + signedAmount(txType, amount)
		if newBalance < 0 {
			return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
				fmt.Sprintf("insufficient funds: balance is %s", formatMoney(wallet.CurrentBalance, currency)))
		}

		created = models.Transaction{
			UserID:          userID,
			CategoryID:      category.ID,
			Type:            txType,
			Amount:          amount,
			Description:     description,
			PaymentMethod:   paymentMethod,
			BalanceAfter:    newBalance,
			ReferenceNumber: refnum.New(),
			TransactionDate: time.Now(),
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		wallet.CurrentBalance = newBalance
		if txType == models.TransactionTypeIncome {
			wallet.TotalIncome += amount
		} else {
			wallet.TotalExpenses += amount
		}
		if err := saveWallet(tx, wallet); err != nil {
			return err
		}

		if txType == models.TransactionTypeExpense {
			if err := checkBudgetAlert(tx, userID, category.ID, category.Name, currency); err != nil {
				return err
			}
			if newBalance < lowBalance {
				err := notify(tx, userID, "Low Balance Alert",
					fmt.Sprintf("Your wallet balance is down to %s.", formatMoney(newBalance, currency)),
					models.NotificationWarning, nil)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(userID, created.ID)
}

// UpdateTransaction edits an existing posting, replaying its effect on the
// wallet and shifting the balance snapshots of every later transaction by
// the net change.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, txType models.TransactionType, amount int64, categoryID uint, paymentMethod models.PaymentMethod, description, referenceNumber, notes string) (*models.Transaction, error) {
	if err := validatePosting(txType, amount, paymentMethod); err != nil {
		return nil, err
	}

	currency := s.settings.Currency(userID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var original models.Transaction
		err := tx.Where("id = ? AND user_id = ?", transactionID, userID).First(&original).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		category, err := resolveCategory(tx, userID, categoryID)
		if err != nil {
			return err
		}

		wallet, err := lockWallet(tx, userID)
		if err != nil {
			return err
		}

		oldEffect := signedAmount(original.Type, original.Amount)
		newEffect := signedAmount(txType, amount)
		delta := newEffect - oldEffect

		newBalance := wallet.CurrentBalance + delta
		if newBalance < 0 {
			return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
				fmt.Sprintf("edit would overdraw the wallet: balance is %s", formatMoney(wallet.CurrentBalance, currency)))
		}

		if original.Type == models.TransactionTypeIncome {
			wallet.TotalIncome -= original.Amount
		} else {
			wallet.TotalExpenses -= original.Amount
		}
		if txType == models.TransactionTypeIncome {
			wallet.TotalIncome += amount
		} else {
			wallet.TotalExpenses += amount
		}
		wallet.CurrentBalance = newBalance

		updates := map[string]interface{}{
			"type":           txType,
			"amount":         amount,
			"category_id":    category.ID,
			"payment_method": paymentMethod,
			"description":    description,
			"notes":          notes,
			"balance_after":  original.BalanceAfter + delta,
		}
		if referenceNumber != "" {
			updates["reference_number"] = referenceNumber
		}
		if err := tx.Model(&original).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if delta != 0 {
			err := tx.Model(&models.Transaction{}).
				Where("user_id = ? AND transaction_date > ?", userID, original.TransactionDate).
				Update("balance_after", gorm.Expr("balance_after + ?", delta)).Error
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		return saveWallet(tx, wallet)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction removes a posting, reverses its effect on the wallet,
// and shifts the balance snapshots of every later transaction. Returns the
// new wallet balance.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) (int64, error) {
	var newBalance int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var original models.Transaction
		err := tx.Where("id = ? AND user_id = ?", transactionID, userID).First(&original).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		wallet, err := lockWallet(tx, userID)
		if err != nil {
			return err
		}

		delta := -signedAmount(original.Type, original.Amount)
		newBalance = wallet.CurrentBalance + delta
		if newBalance < 0 {
			return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
				"removing this income would overdraw the wallet")
		}

		if original.Type == models.TransactionTypeIncome {
			wallet.TotalIncome -= original.Amount
		} else {
			wallet.TotalExpenses -= original.Amount
		}
		wallet.CurrentBalance = newBalance

		if err := tx.Delete(&original).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		err = tx.Model(&models.Transaction{}).
			Where("user_id = ? AND transaction_date > ?", userID, original.TransactionDate).
			Update("balance_after", gorm.Expr("balance_after + ?", delta)).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return saveWallet(tx, wallet)
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// GetUserTransactions returns the user's transactions newest-first with
// optional filters applied.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if filter.FromDate != nil {
		query = query.Where("transaction_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("transaction_date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BillID != nil {
		query = query.Where("bill_id = ?", *filter.BillID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	err := query.Preload("Category").
		Order("transaction_date DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetTransactionByID returns a single transaction owned by the user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// checkBudgetAlert recomputes the spent amount of any budget covering the
// category's current period and emits a warning when the alert threshold
// is crossed. Runs inside the posting's store transaction.
func checkBudgetAlert(tx *gorm.DB, userID, categoryID uint, categoryName, currency string) error {
	now := time.Now()
	var budgets []models.Budget
	err := tx.Where("user_id = ? AND category_id = ? AND period_start <= ? AND period_end >= ?",
		userID, categoryID, now, now).Find(&budgets).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range budgets {
		budget := &budgets[i]
		spent, err := sumCategoryExpenses(tx, userID, categoryID, budget.PeriodStart, budget.PeriodEnd)
		if err != nil {
			return err
		}
		if err := tx.Model(budget).Update("spent_amount", spent).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if budget.AllocatedAmount <= 0 {
			continue
		}
		pct := float64(spent) / float64(budget.AllocatedAmount) * 100
		if pct < budget.AlertThreshold {
			continue
		}

		message := fmt.Sprintf("You have spent %s of your %s budget for %s (%.0f%%).",
			formatMoney(spent, currency), formatMoney(budget.AllocatedAmount, currency), categoryName, pct)
		if err := notify(tx, userID, "Budget Alert", message, models.NotificationWarning, nil); err != nil {
			logger.Get().Warnw("failed to record budget alert", "user_id", userID, "budget_id", budget.ID, "error", err)
		}
	}
	return nil
}

// sumCategoryExpenses totals the user's expense postings for one category
// within a period.
func sumCategoryExpenses(tx *gorm.DB, userID, categoryID uint, from, to time.Time) (int64, error) {
	var spent int64
	err := tx.Model(&models.Transaction{}).
		Where("user_id = ? AND category_id = ? AND type = ? AND transaction_date >= ? AND transaction_date <= ?",
			userID, categoryID, models.TransactionTypeExpense, from, to).
		Select("COALESCE(SUM(amount), 0)").Scan(&spent).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}
