package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
)

// walletService handles wallet balance access.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// GetWallet returns the user's wallet row, creating it with a zero balance
// on first access.
func (s *walletService) GetWallet(userID uint) (*models.WalletBalance, error) {
	var wallet models.WalletBalance
	err := s.db.Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.WalletBalance{UserID: userID}
		if err := s.db.Create(&wallet).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wallet, nil
}

// lockWallet loads the user's wallet row under a row-level write lock,
// creating it first if it does not exist. The wallet row is the
// serialization point for all of a user's postings: concurrent
// read-modify-write sequences against it would otherwise lose updates.
// Must be called inside a store transaction.
func lockWallet(tx *gorm.DB, userID uint) (*models.WalletBalance, error) {
	var wallet models.WalletBalance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.WalletBalance{UserID: userID}
		if err := tx.Create(&wallet).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wallet, nil
}

// saveWallet persists the wallet's balance and aggregate columns.
func saveWallet(tx *gorm.DB, wallet *models.WalletBalance) error {
	err := tx.Model(wallet).Updates(map[string]interface{}{
		"current_balance": wallet.CurrentBalance,
		"total_income":    wallet.TotalIncome,
		"total_expenses":  wallet.TotalExpenses,
	}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// formatMoney renders cents as a currency string with thousands grouping,
// e.g. formatMoney(123456789, "KES") == "KES 1,234,567.89".
func formatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%s %s%s.%02d", currency, sign, strings.Join(groups, ","), frac)
}
