package services

import (
	"fmt"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
	"portfolio-backend/utils"
)

// ExperienceService handles business logic for work experience entries
type ExperienceService struct {
	repo     *repositories.ExperienceRepository
	activity *ActivityService
}

// NewExperienceService creates a new experience service instance
func NewExperienceService() *ExperienceService {
	return &ExperienceService{
		repo:     repositories.NewExperienceRepository(),
		activity: NewActivityService(),
	}
}

// NewExperienceServiceWith wires explicit collaborators, used by tests
func NewExperienceServiceWith(repo *repositories.ExperienceRepository, activity *ActivityService) *ExperienceService {
	return &ExperienceService{repo: repo, activity: activity}
}

// ListAdmin retrieves all experience entries, optionally filtered by search
func (s *ExperienceService) ListAdmin(search string) ([]models.WorkExperience, error) {
	return s.repo.FindAdmin(search)
}

// ListPublic retrieves visible experience entries
func (s *ExperienceService) ListPublic() ([]models.WorkExperience, error) {
	return s.repo.FindPublic()
}

// Get retrieves an experience entry by ID
func (s *ExperienceService) Get(id string) (models.WorkExperience, error) {
	return s.repo.FindByID(id)
}

// Create validates and inserts an experience entry. A current position
// carries no end date.
func (s *ExperienceService) Create(req dto.CreateExperienceRequest, userID *string) (models.WorkExperience, error) {
	startDate, err := utils.ParseDate("startDate", req.StartDate)
	if err != nil {
		return models.WorkExperience{}, err
	}

	endDate, err := utils.ParseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return models.WorkExperience{}, err
	}
	if req.Current {
		endDate = nil
	}

	sortOrder, err := resolveSortOrder(req.Order, s.repo.NextSortOrder)
	if err != nil {
		return models.WorkExperience{}, err
	}

	entry := models.WorkExperience{
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   startDate,
		EndDate:     endDate,
		Current:     req.Current,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Visible:     resolveVisible(req.Visible),
		SortOrder:   sortOrder,
	}

	created, err := s.repo.Create(entry)
	if err != nil {
		return models.WorkExperience{}, err
	}

	s.activity.Record(userID, models.ActionCreate, "experience", created.ID,
		fmt.Sprintf("Created experience %q at %q", created.Position, created.Company), nil)
	utils.FlushCache()
	return created, nil
}

// Update applies a partial update to an experience entry
func (s *ExperienceService) Update(id string, req dto.UpdateExperienceRequest, userID *string) (models.WorkExperience, error) {
	fields := map[string]interface{}{}
	setString(fields, "company", req.Company)
	setString(fields, "position", req.Position)
	setString(fields, "description", req.Description)
	setString(fields, "location", req.Location)
	setString(fields, "type", req.Type)

	if req.StartDate != nil {
		startDate, err := utils.ParseDate("startDate", *req.StartDate)
		if err != nil {
			return models.WorkExperience{}, err
		}
		fields["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseOptionalDate("endDate", *req.EndDate)
		if err != nil {
			return models.WorkExperience{}, err
		}
		fields["end_date"] = endDate
	}
	if req.Current != nil {
		fields["current"] = *req.Current
		if *req.Current {
			fields["end_date"] = nil
		}
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
		return models.WorkExperience{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "experience", id,
		fmt.Sprintf("Updated experience %q at %q", updated.Position, updated.Company), nil)
	utils.FlushCache()
	return updated, nil
}

// Delete removes an experience entry
func (s *ExperienceService) Delete(id string, userID *string) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionDelete, "experience", id,
		fmt.Sprintf("Deleted experience %q at %q", existing.Position, existing.Company), nil)
	utils.FlushCache()
	return nil
}

// BulkDelete removes a set of entries and writes one aggregated audit entry
func (s *ExperienceService) BulkDelete(ids []string, userID *string) (int64, error) {
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

	s.activity.Record(userID, models.ActionDelete, "experience", models.BulkEntityID,
		fmt.Sprintf("Deleted %d experience entries", count),
		map[string]interface{}{"ids": matched, "names": names})
	utils.FlushCache()
	return count, nil
}
