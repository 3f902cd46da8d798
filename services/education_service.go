package services

import (
	"fmt"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
	"portfolio-backend/utils"
)

// EducationService handles business logic for education entries
type EducationService struct {
	repo     *repositories.EducationRepository
	activity *ActivityService
}

// NewEducationService creates a new education service instance
func NewEducationService() *EducationService {
	return &EducationService{
		repo:     repositories.NewEducationRepository(),
		activity: NewActivityService(),
	}
}

// NewEducationServiceWith wires explicit collaborators, used by tests
func NewEducationServiceWith(repo *repositories.EducationRepository, activity *ActivityService) *EducationService {
	return &EducationService{repo: repo, activity: activity}
}

// ListAdmin retrieves all education entries, optionally filtered by search
func (s *EducationService) ListAdmin(search string) ([]models.Education, error) {
	return s.repo.FindAdmin(search)
}

// ListPublic retrieves visible education entries
func (s *EducationService) ListPublic() ([]models.Education, error) {
	return s.repo.FindPublic()
}

// Get retrieves an education entry by ID
func (s *EducationService) Get(id string) (models.Education, error) {
	return s.repo.FindByID(id)
}

// Create validates and inserts an education entry
func (s *EducationService) Create(req dto.CreateEducationRequest, userID *string) (models.Education, error) {
	startDate, err := utils.ParseDate("startDate", req.StartDate)
	if err != nil {
		return models.Education{}, err
	}

	endDate, err := utils.ParseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return models.Education{}, err
	}
	if req.Current {
		endDate = nil
	}

	sortOrder, err := resolveSortOrder(req.Order, s.repo.NextSortOrder)
	if err != nil {
		return models.Education{}, err
	}

	entry := models.Education{
		School:       req.School,
		Degree:       req.Degree,
		Field:        req.Field,
		StartDate:    startDate,
		EndDate:      endDate,
		Current:      req.Current,
		GPA:          req.GPA,
		Description:  req.Description,
		Location:     req.Location,
		Achievements: models.StringList(req.Achievements),
		Visible:      resolveVisible(req.Visible),
		SortOrder:    sortOrder,
	}

	created, err := s.repo.Create(entry)
	if err != nil {
		return models.Education{}, err
	}

	s.activity.Record(userID, models.ActionCreate, "education", created.ID,
		fmt.Sprintf("Created education %q", created.School), nil)
	utils.FlushCache()
	return created, nil
}

// Update applies a partial update to an education entry
func (s *EducationService) Update(id string, req dto.UpdateEducationRequest, userID *string) (models.Education, error) {
	fields := map[string]interface{}{}
	setString(fields, "school", req.School)
	setString(fields, "degree", req.Degree)
	setString(fields, "field", req.Field)
	setString(fields, "gpa", req.GPA)
	setString(fields, "description", req.Description)
	setString(fields, "location", req.Location)

	if req.StartDate != nil {
		startDate, err := utils.ParseDate("startDate", *req.StartDate)
		if err != nil {
			return models.Education{}, err
		}
		fields["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseOptionalDate("endDate", *req.EndDate)
		if err != nil {
			return models.Education{}, err
		}
		fields["end_date"] = endDate
	}
	if req.Current != nil {
		fields["current"] = *req.Current
		if *req.Current {
			fields["end_date"] = nil
		}
	}
	if req.Achievements != nil {
		fields["achievements"] = models.StringList(*req.Achievements)
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
		return models.Education{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "education", id,
		fmt.Sprintf("Updated education %q", updated.School), nil)
	utils.FlushCache()
	return updated, nil
}

// Delete removes an education entry
func (s *EducationService) Delete(id string, userID *string) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionDelete, "education", id,
		fmt.Sprintf("Deleted education %q", existing.School), nil)
	utils.FlushCache()
	return nil
}

// BulkDelete removes a set of entries and writes one aggregated audit entry
func (s *EducationService) BulkDelete(ids []string, userID *string) (int64, error) {
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

	s.activity.Record(userID, models.ActionDelete, "education", models.BulkEntityID,
		fmt.Sprintf("Deleted %d education entries", count),
		map[string]interface{}{"ids": matched, "names": names})
	utils.FlushCache()
	return count, nil
}
