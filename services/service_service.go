package services

import (
	"fmt"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
	"portfolio-backend/utils"
)

// ServiceService handles business logic for service offerings
type ServiceService struct {
	repo     *repositories.ServiceRepository
	activity *ActivityService
}

// NewServiceService creates a new service-offering service instance
func NewServiceService() *ServiceService {
	return &ServiceService{
		repo:     repositories.NewServiceRepository(),
		activity: NewActivityService(),
	}
}

// NewServiceServiceWith wires explicit collaborators, used by tests
func NewServiceServiceWith(repo *repositories.ServiceRepository, activity *ActivityService) *ServiceService {
	return &ServiceService{repo: repo, activity: activity}
}

// ListAdmin retrieves all services, optionally filtered by search
func (s *ServiceService) ListAdmin(search string) ([]models.Service, error) {
	return s.repo.FindAdmin(search)
}

// ListPublic retrieves visible services
func (s *ServiceService) ListPublic() ([]models.Service, error) {
	return s.repo.FindPublic()
}

// Get retrieves a service by ID
func (s *ServiceService) Get(id string) (models.Service, error) {
	return s.repo.FindByID(id)
}

// Create validates and inserts a service offering
func (s *ServiceService) Create(req dto.CreateServiceRequest, userID *string) (models.Service, error) {
	sortOrder, err := resolveSortOrder(req.Order, s.repo.NextSortOrder)
	if err != nil {
		return models.Service{}, err
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    models.StringList(req.Features),
		Visible:     resolveVisible(req.Visible),
		SortOrder:   sortOrder,
	}

	created, err := s.repo.Create(service)
	if err != nil {
		return models.Service{}, err
	}

	s.activity.Record(userID, models.ActionCreate, "service", created.ID,
		fmt.Sprintf("Created service %q", created.Title), nil)
	utils.FlushCache()
	return created, nil
}

// Update applies a partial update to a service offering
func (s *ServiceService) Update(id string, req dto.UpdateServiceRequest, userID *string) (models.Service, error) {
	fields := map[string]interface{}{}
	setString(fields, "title", req.Title)
	setString(fields, "description", req.Description)
	setString(fields, "icon", req.Icon)
	if req.Features != nil {
		fields["features"] = models.StringList(*req.Features)
	}
	if req.Visible != nil {
		fields["visible"] = *req.Visible
	}
	if req.Order != nil {
		fields["sort_order"] = *req.Order
	}

	if len(fields) == 0 {
		return s.repo.FindByID(id)
	}

	updated, err := s.repo.Update(id, fields)
	if err != nil {
		return models.Service{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "service", id,
		fmt.Sprintf("Updated service %q", updated.Title), nil)
	utils.FlushCache()
	return updated, nil
}

// Delete removes a service offering
func (s *ServiceService) Delete(id string, userID *string) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionDelete, "service", id,
		fmt.Sprintf("Deleted service %q", existing.Title), nil)
	utils.FlushCache()
	return nil
}

// BulkDelete removes a set of services and writes one aggregated audit entry
func (s *ServiceService) BulkDelete(ids []string, userID *string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.NewValidation("ids", "no ids provided")
	}

	matched, names, err := s.repo.RefsByIDs(ids)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.BulkDelete(ids)
	if err != nil {
		return 0, err
	}

	s.activity.Record(userID, models.ActionDelete, "service", models.BulkEntityID,
		fmt.Sprintf("Deleted %d services", count),
		map[string]interface{}{"ids": matched, "names": names})
	utils.FlushCache()
	return count, nil
}
