package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

// SettingsRepository handles database operations for the single site settings row
type SettingsRepository struct{}

// NewSettingsRepository creates a new settings repository instance
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get retrieves the settings row, falling back to defaults when absent.
// An absent row is never an error.
func (r *SettingsRepository) Get() (models.SiteSettings, error) {
	var settings models.SiteSettings
	result := database.DB.First(&settings, "id = ?", models.SiteSettingsID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.DefaultSiteSettings(), nil
	}
	return settings, result.Error
}

// Upsert writes the settings row, creating it on first save
func (r *SettingsRepository) Upsert(settings models.SiteSettings) (models.SiteSettings, error) {
	settings.ID = models.SiteSettingsID
	err := database.DB.Save(&settings).Error
	return settings, err
}
