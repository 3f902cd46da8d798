package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/apperr"
	"portfolio-backend/database"
	"portfolio-backend/models"
)

// SkillRepository handles database operations for skills
type SkillRepository struct{}

// NewSkillRepository creates a new skill repository instance
func NewSkillRepository() *SkillRepository {
	return &SkillRepository{}
}

// FindAdmin retrieves all skills, optionally filtered by a
// case-insensitive substring search over name and category
func (r *SkillRepository) FindAdmin(search string) ([]models.Skill, error) {
	var skills []models.Skill
	db := database.DB

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("lower(name) LIKE lower(?) OR lower(category) LIKE lower(?)", pattern, pattern)
	}

	result := db.Order("sort_order asc, id asc").Find(&skills)
	return skills, result.Error
}

// FindPublic retrieves visible skills in display order
func (r *SkillRepository) FindPublic() ([]models.Skill, error) {
	var skills []models.Skill
	result := database.DB.Where("visible = ?", true).
		Order("sort_order asc, id asc").Find(&skills)
	return skills, result.Error
}

// FindByID retrieves a skill by its ID
func (r *SkillRepository) FindByID(id string) (models.Skill, error) {
	var skill models.Skill
	result := database.DB.First(&skill, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return skill, apperr.NewNotFound("skill", id)
	}
	return skill, result.Error
}

// Create inserts a new skill
func (r *SkillRepository) Create(skill models.Skill) (models.Skill, error) {
	result := database.DB.Create(&skill)
	return skill, result.Error
}

// Update applies the supplied column values to a skill and reloads it
func (r *SkillRepository) Update(id string, fields map[string]interface{}) (models.Skill, error) {
	result := database.DB.Model(&models.Skill{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Skill{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Skill{}, apperr.NewNotFound("skill", id)
	}
	return r.FindByID(id)
}

// Delete removes a skill
func (r *SkillRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("skill", id)
	}
	return nil
}

// BulkDelete removes the skills with the given ids as one set operation
func (r *SkillRepository) BulkDelete(ids []string) (int64, error) {
	result := database.DB.Where("id IN ?", ids).Delete(&models.Skill{})
	return result.RowsAffected, result.Error
}

// RefsByIDs returns ids and names of the skills that exist among ids,
// index-aligned, for audit metadata
func (r *SkillRepository) RefsByIDs(ids []string) ([]string, []string, error) {
	var skills []models.Skill
	err := database.DB.Select("id", "name").Where("id IN ?", ids).Find(&skills).Error
	if err != nil {
		return nil, nil, err
	}

	matched := make([]string, 0, len(skills))
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		matched = append(matched, s.ID)
		names = append(names, s.Name)
	}
	return matched, names, nil
}

// NextSortOrder computes max(sort_order)+1 across all skills
func (r *SkillRepository) NextSortOrder() (int, error) {
	return nextSortOrder(&models.Skill{})
}
