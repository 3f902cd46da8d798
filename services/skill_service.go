package services

import (
	"fmt"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
	"portfolio-backend/utils"
)

// SkillService handles business logic for skills
type SkillService struct {
	repo     *repositories.SkillRepository
	activity *ActivityService
}

// NewSkillService creates a new skill service instance
func NewSkillService() *SkillService {
	return &SkillService{
		repo:     repositories.NewSkillRepository(),
		activity: NewActivityService(),
	}
}

// NewSkillServiceWith wires explicit collaborators, used by tests
func NewSkillServiceWith(repo *repositories.SkillRepository, activity *ActivityService) *SkillService {
	return &SkillService{repo: repo, activity: activity}
}

// ListAdmin retrieves all skills, optionally filtered by search
func (s *SkillService) ListAdmin(search string) ([]models.Skill, error) {
	return s.repo.FindAdmin(search)
}

// ListPublic retrieves visible skills
func (s *SkillService) ListPublic() ([]models.Skill, error) {
	return s.repo.FindPublic()
}

// Get retrieves a skill by ID
func (s *SkillService) Get(id string) (models.Skill, error) {
	return s.repo.FindByID(id)
}

// Create validates and inserts a skill. Category is a closed set,
// enforced here rather than by the out-of-band repair tooling.
func (s *SkillService) Create(req dto.CreateSkillRequest, userID *string) (models.Skill, error) {
	if !models.IsValidSkillCategory(req.Category) {
		return models.Skill{}, apperr.NewValidation("category", "unknown category: "+req.Category)
	}

	sortOrder, err := resolveSortOrder(req.Order, s.repo.NextSortOrder)
	if err != nil {
		return models.Skill{}, err
	}

	skill := models.Skill{
		Category:  req.Category,
		Name:      req.Name,
		Level:     req.Level,
		Icon:      req.Icon,
		Visible:   resolveVisible(req.Visible),
		SortOrder: sortOrder,
	}

	created, err := s.repo.Create(skill)
	if err != nil {
		return models.Skill{}, err
	}

	s.activity.Record(userID, models.ActionCreate, "skill", created.ID,
		fmt.Sprintf("Created skill %q", created.Name), nil)
	utils.FlushCache()
	return created, nil
}

// Update applies a partial update to a skill
func (s *SkillService) Update(id string, req dto.UpdateSkillRequest, userID *string) (models.Skill, error) {
	if req.Category != nil && !models.IsValidSkillCategory(*req.Category) {
		return models.Skill{}, apperr.NewValidation("category", "unknown category: "+*req.Category)
	}

	fields := map[string]interface{}{}
	setString(fields, "category", req.Category)
	setString(fields, "name", req.Name)
	setString(fields, "icon", req.Icon)
	if req.Level != nil {
		fields["level"] = *req.Level
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
		return models.Skill{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "skill", id,
		fmt.Sprintf("Updated skill %q", updated.Name), nil)
	utils.FlushCache()
	return updated, nil
}

// Delete removes a skill
func (s *SkillService) Delete(id string, userID *string) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionDelete, "skill", id,
		fmt.Sprintf("Deleted skill %q", existing.Name), nil)
	utils.FlushCache()
	return nil
}

// BulkDelete removes a set of skills and writes one aggregated audit entry
func (s *SkillService) BulkDelete(ids []string, userID *string) (int64, error) {
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

	s.activity.Record(userID, models.ActionDelete, "skill", models.BulkEntityID,
		fmt.Sprintf("Deleted %d skills", count),
		map[string]interface{}{"ids": matched, "names": names})
	utils.FlushCache()
	return count, nil
}
