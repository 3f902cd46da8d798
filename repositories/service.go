package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/apperr"
	"portfolio-backend/database"
	"portfolio-backend/models"
)

// ServiceRepository handles database operations for service offerings
type ServiceRepository struct{}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

// FindAdmin retrieves all services, optionally filtered by a
// case-insensitive substring search over title and description
func (r *ServiceRepository) FindAdmin(search string) ([]models.Service, error) {
	var services []models.Service
	db := database.DB

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("lower(title) LIKE lower(?) OR lower(description) LIKE lower(?)", pattern, pattern)
	}

	result := db.Order("sort_order asc, id asc").Find(&services)
	return services, result.Error
}

// FindPublic retrieves visible services in display order
func (r *ServiceRepository) FindPublic() ([]models.Service, error) {
	var services []models.Service
	result := database.DB.Where("visible = ?", true).
		Order("sort_order asc, id asc").Find(&services)
	return services, result.Error
}

// FindByID retrieves a service by its ID
func (r *ServiceRepository) FindByID(id string) (models.Service, error) {
	var service models.Service
	result := database.DB.First(&service, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return service, apperr.NewNotFound("service", id)
	}
	return service, result.Error
}

// Create inserts a new service
func (r *ServiceRepository) Create(service models.Service) (models.Service, error) {
	result := database.DB.Create(&service)
	return service, result.Error
}

// Update applies the supplied column values to a service and reloads it
func (r *ServiceRepository) Update(id string, fields map[string]interface{}) (models.Service, error) {
	result := database.DB.Model(&models.Service{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Service{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Service{}, apperr.NewNotFound("service", id)
	}
	return r.FindByID(id)
}

// Delete removes a service
func (r *ServiceRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("service", id)
	}
	return nil
}

// BulkDelete removes the services with the given ids as one set operation
func (r *ServiceRepository) BulkDelete(ids []string) (int64, error) {
	result := database.DB.Where("id IN ?", ids).Delete(&models.Service{})
	return result.RowsAffected, result.Error
}

// RefsByIDs returns ids and titles of the services that exist among ids,
// index-aligned, for audit metadata
func (r *ServiceRepository) RefsByIDs(ids []string) ([]string, []string, error) {
	var services []models.Service
	err := database.DB.Select("id", "title").Where("id IN ?", ids).Find(&services).Error
	if err != nil {
		return nil, nil, err
	}

	matched := make([]string, 0, len(services))
	titles := make([]string, 0, len(services))
	for _, s := range services {
		matched = append(matched, s.ID)
		titles = append(titles, s.Title)
	}
	return matched, titles, nil
}

// NextSortOrder computes max(sort_order)+1 across all services
func (r *ServiceRepository) NextSortOrder() (int, error) {
	return nextSortOrder(&models.Service{})
}
