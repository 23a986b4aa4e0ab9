package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a user-owned category. Names are unique per user,
// case-insensitively, counting the global defaults.
func (s *categoryService) CreateCategory(userID uint, name, icon, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var existing models.Category
	err := s.db.Where("LOWER(name) = ? AND (user_id = ? OR is_default = ?)", strings.ToLower(name), userID, true).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateCategory
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category := &models.Category{
		UserID: &userID,
		Name:   name,
		Icon:   icon,
		Color:  color,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetUserCategories lists the user's categories together with the global
// defaults, ordered by name.
func (s *categoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ? OR is_default = ?", userID, true).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryForUser resolves a category the user may post against: either
// one they own or a global default.
func (s *categoryService) GetCategoryForUser(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND (user_id = ? OR is_default = ?)", categoryID, userID, true).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates a user-owned category. Global defaults cannot be
// edited.
func (s *categoryService) UpdateCategory(userID, categoryID uint, name, icon, color string) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if name = strings.TrimSpace(name); name != "" {
		updates["name"] = name
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if color != "" {
		updates["color"] = color
	}
	if len(updates) > 0 {
		if err := s.db.Model(&category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return &category, nil
}

// DeleteCategory removes a user-owned category if no transactions, bills,
// or budgets reference it.
func (s *categoryService) DeleteCategory(userID, categoryID uint) error {
	var category models.Category
	err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, model := range []interface{}{&models.Transaction{}, &models.Bill{}, &models.Budget{}} {
		var count int64
		if err := s.db.Model(model).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrCategoryInUse
		}
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// savingsTransferCategoryID resolves the reserved default category used for
// the offsetting wallet postings of savings deposits and withdrawals.
func savingsTransferCategoryID(tx *gorm.DB) (uint, error) {
	var category models.Category
	err := tx.Where("name = ? AND is_default = ?", models.SavingsTransferCategoryName, true).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.Category{
			Name:      models.SavingsTransferCategoryName,
			Icon:      "fas fa-piggy-bank",
			Color:     "#16ac2e",
			IsDefault: true,
		}
		if err := tx.Create(&category).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return category.ID, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category.ID, nil
}
