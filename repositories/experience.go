package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/apperr"
	"portfolio-backend/database"
	"portfolio-backend/models"
)

// ExperienceRepository handles database operations for work experience entries
type ExperienceRepository struct{}

// NewExperienceRepository creates a new experience repository instance
func NewExperienceRepository() *ExperienceRepository {
	return &ExperienceRepository{}
}

// FindAdmin retrieves all experience entries, optionally filtered by a
// case-insensitive substring search over company and position
func (r *ExperienceRepository) FindAdmin(search string) ([]models.WorkExperience, error) {
	var entries []models.WorkExperience
	db := database.DB

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("lower(company) LIKE lower(?) OR lower(position) LIKE lower(?)", pattern, pattern)
	}

	result := db.Order("current desc, start_date desc, id asc").Find(&entries)
	return entries, result.Error
}

// FindPublic retrieves visible experience entries. Current positions sort
// first, then most recent start date.
func (r *ExperienceRepository) FindPublic() ([]models.WorkExperience, error) {
	var entries []models.WorkExperience
	result := database.DB.Where("visible = ?", true).
		Order("current desc, start_date desc, id asc").Find(&entries)
	return entries, result.Error
}

// FindByID retrieves an experience entry by its ID
func (r *ExperienceRepository) FindByID(id string) (models.WorkExperience, error) {
	var entry models.WorkExperience
	result := database.DB.First(&entry, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return entry, apperr.NewNotFound("experience", id)
	}
	return entry, result.Error
}

// Create inserts a new experience entry
func (r *ExperienceRepository) Create(entry models.WorkExperience) (models.WorkExperience, error) {
	result := database.DB.Create(&entry)
	return entry, result.Error
}

// Update applies the supplied column values to an entry and reloads it
func (r *ExperienceRepository) Update(id string, fields map[string]interface{}) (models.WorkExperience, error) {
	result := database.DB.Model(&models.WorkExperience{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.WorkExperience{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkExperience{}, apperr.NewNotFound("experience", id)
	}
	return r.FindByID(id)
}

// Delete removes an experience entry
func (r *ExperienceRepository) Delete(id string) error {
	result := database.DB.Delete(&models.WorkExperience{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("experience", id)
	}
	return nil
}

// BulkDelete removes the entries with the given ids as one set operation
func (r *ExperienceRepository) BulkDelete(ids []string) (int64, error) {
	result := database.DB.Where("id IN ?", ids).Delete(&models.WorkExperience{})
	return result.RowsAffected, result.Error
}

// RefsByIDs returns ids and "position at company" labels of the entries
// that exist among ids, index-aligned, for audit metadata
func (r *ExperienceRepository) RefsByIDs(ids []string) ([]string, []string, error) {
	var entries []models.WorkExperience
	err := database.DB.Select("id", "company", "position").Where("id IN ?", ids).Find(&entries).Error
	if err != nil {
		return nil, nil, err
	}

	matched := make([]string, 0, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		matched = append(matched, e.ID)
		names = append(names, e.Position+" at "+e.Company)
	}
	return matched, names, nil
}

// NextSortOrder computes max(sort_order)+1 across all experience entries
func (r *ExperienceRepository) NextSortOrder() (int, error) {
	return nextSortOrder(&models.WorkExperience{})
}
