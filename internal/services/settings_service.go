package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dennismwa/luidigitals/internal/config"
	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
)

// settingsService handles per-user preference rows.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns all of a user's settings as a key/value map.
func (s *settingsService) GetSettings(userID uint) (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.SettingKey] = row.SettingValue
	}
	return settings, nil
}

// SetSetting upserts a single setting row.
func (s *settingsService) SetSetting(userID uint, key, value string) error {
	if key == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "setting key is required")
	}

	row := models.Setting{UserID: userID, SettingKey: key, SettingValue: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Currency returns the user's display currency, falling back to the
// configured default.
func (s *settingsService) Currency(userID uint) string {
	var row models.Setting
	err := s.db.Where("user_id = ? AND setting_key = ?", userID, models.SettingCurrency).First(&row).Error
	if err != nil || row.SettingValue == "" {
		return config.Get().DefaultCurrency
	}
	return row.SettingValue
}

// LowBalanceThreshold returns the low-balance alert threshold in cents.
func (s *settingsService) LowBalanceThreshold(userID uint) int64 {
	var row models.Setting
	err := s.db.Where("user_id = ? AND setting_key = ?", userID, models.SettingLowBalanceAlert).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultLowBalanceAlert
	}
	if err != nil {
		return models.DefaultLowBalanceAlert
	}

	threshold, parseErr := strconv.ParseInt(row.SettingValue, 10, 64)
	if parseErr != nil {
		return models.DefaultLowBalanceAlert
	}
	return threshold
}
