package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/apperr"
	"portfolio-backend/database"
	"portfolio-backend/models"
)

// EducationRepository handles database operations for education entries
type EducationRepository struct{}

// NewEducationRepository creates a new education repository instance
func NewEducationRepository() *EducationRepository {
	return &EducationRepository{}
}

// FindAdmin retrieves all education entries, optionally filtered by a
// case-insensitive substring search over school, degree and field
func (r *EducationRepository) FindAdmin(search string) ([]models.Education, error) {
	var entries []models.Education
	db := database.DB

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where(
			"lower(school) LIKE lower(?) OR lower(degree) LIKE lower(?) OR lower(field) LIKE lower(?)",
			pattern, pattern, pattern,
		)
	}

	result := db.Order("sort_order asc, start_date desc, id asc").Find(&entries)
	return entries, result.Error
}

// FindPublic retrieves visible education entries in display order,
// ties broken by most recent start date
func (r *EducationRepository) FindPublic() ([]models.Education, error) {
	var entries []models.Education
	result := database.DB.Where("visible = ?", true).
		Order("sort_order asc, start_date desc, id asc").Find(&entries)
	return entries, result.Error
}

// FindByID retrieves an education entry by its ID
func (r *EducationRepository) FindByID(id string) (models.Education, error) {
	var entry models.Education
	result := database.DB.First(&entry, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return entry, apperr.NewNotFound("education", id)
	}
	return entry, result.Error
}

// Create inserts a new education entry
func (r *EducationRepository) Create(entry models.Education) (models.Education, error) {
	result := database.DB.Create(&entry)
	return entry, result.Error
}

// Update applies the supplied column values to an entry and reloads it
func (r *EducationRepository) Update(id string, fields map[string]interface{}) (models.Education, error) {
	result := database.DB.Model(&models.Education{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Education{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Education{}, apperr.NewNotFound("education", id)
	}
	return r.FindByID(id)
}

// Delete removes an education entry
func (r *EducationRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Education{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("education", id)
	}
	return nil
}

// BulkDelete removes the entries with the given ids as one set operation
func (r *EducationRepository) BulkDelete(ids []string) (int64, error) {
	result := database.DB.Where("id IN ?", ids).Delete(&models.Education{})
	return result.RowsAffected, result.Error
}

// RefsByIDs returns ids and school names of the entries that exist among ids,
// index-aligned, for audit metadata
func (r *EducationRepository) RefsByIDs(ids []string) ([]string, []string, error) {
	var entries []models.Education
	err := database.DB.Select("id", "school").Where("id IN ?", ids).Find(&entries).Error
	if err != nil {
		return nil, nil, err
	}

	matched := make([]string, 0, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		matched = append(matched, e.ID)
		names = append(names, e.School)
	}
	return matched, names, nil
}

// NextSortOrder computes max(sort_order)+1 across all education entries
func (r *EducationRepository) NextSortOrder() (int, error) {
	return nextSortOrder(&models.Education{})
}
