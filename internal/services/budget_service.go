package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
)

// budgetService tracks per-category spending limits. Spent amounts are
// derived from the transaction log and cached on the budget row.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

func validateBudget(name string, allocatedAmount int64, periodStart, periodEnd time.Time, alertThreshold float64) error {
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if allocatedAmount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "allocated amount must be greater than zero")
	}
	if !periodEnd.After(periodStart) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "period end must be after period start")
	}
	if alertThreshold < 0 || alertThreshold > 100 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "alert threshold must be between 0 and 100")
	}
	return nil
}

// CreateBudget starts tracking a category against an allocation for a
// period. The initial spent amount is computed from postings already inside
// the period.
func (s *budgetService) CreateBudget(userID, categoryID uint, name string, allocatedAmount int64, periodStart, periodEnd time.Time, alertThreshold float64) (*models.Budget, error) {
	if err := validateBudget(name, allocatedAmount, periodStart, periodEnd, alertThreshold); err != nil {
		return nil, err
	}

	var created models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveCategory(tx, userID, categoryID); err != nil {
			return err
		}

		spent, err := sumCategoryExpenses(tx, userID, categoryID, periodStart, periodEnd)
		if err != nil {
			return err
		}

		created = models.Budget{
			UserID:          userID,
			CategoryID:      categoryID,
			Name:            name,
			AllocatedAmount: allocatedAmount,
			PeriodStart:     periodStart,
			PeriodEnd:       periodEnd,
			AlertThreshold:  alertThreshold,
			SpentAmount:     spent,
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBudgetByID(userID, created.ID)
}

// UpdateBudget edits a budget and recomputes its spent amount against the
// possibly changed category and period.
func (s *budgetService) UpdateBudget(userID, budgetID, categoryID uint, name string, allocatedAmount int64, periodStart, periodEnd time.Time, alertThreshold float64) (*models.Budget, error) {
	if err := validateBudget(name, allocatedAmount, periodStart, periodEnd, alertThreshold); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		err := tx.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBudgetNotFound
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if _, err := resolveCategory(tx, userID, categoryID); err != nil {
			return err
		}

		spent, err := sumCategoryExpenses(tx, userID, categoryID, periodStart, periodEnd)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"category_id":      categoryID,
			"name":             name,
			"allocated_amount": allocatedAmount,
			"period_start":     periodStart,
			"period_end":       periodEnd,
			"alert_threshold":  alertThreshold,
			"spent_amount":     spent,
		}
		if err := tx.Model(&budget).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBudgetByID(userID, budgetID)
}

// GetUserBudgets recomputes each budget's spent amount from the transaction
// log, persists it, and returns the fresh rows. A manual reset only lasts
// until this recomputation runs.
func (s *budgetService) GetUserBudgets(userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Category").
			Where("user_id = ?", userID).
			Order("period_start DESC, id ASC").
			Find(&budgets).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range budgets {
			budget := &budgets[i]
			spent, err := sumCategoryExpenses(tx, userID, budget.CategoryID, budget.PeriodStart, budget.PeriodEnd)
			if err != nil {
				return err
			}
			if spent == budget.SpentAmount {
				continue
			}
			if err := tx.Model(budget).Update("spent_amount", spent).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			budget.SpentAmount = spent
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

// GetBudgetByID returns a single budget owned by the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// DeleteBudget removes a budget. The transaction log is untouched.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// ResetBudgets zeroes the cached spent amount on all of the user's budgets.
// Postings are not touched, so the next list view restores the true value.
func (s *budgetService) ResetBudgets(userID uint) error {
	err := s.db.Model(&models.Budget{}).
		Where("user_id = ?", userID).
		Update("spent_amount", 0).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
