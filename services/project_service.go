package services

import (
	"fmt"
	"time"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
	"portfolio-backend/utils"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo     *repositories.ProjectRepository
	activity *ActivityService
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		repo:     repositories.NewProjectRepository(),
		activity: NewActivityService(),
	}
}

// NewProjectServiceWith wires explicit collaborators, used by tests
func NewProjectServiceWith(repo *repositories.ProjectRepository, activity *ActivityService) *ProjectService {
	return &ProjectService{repo: repo, activity: activity}
}

// ListAdmin retrieves all projects, optionally filtered by search
func (s *ProjectService) ListAdmin(search string) ([]models.Project, error) {
	return s.repo.FindAdmin(search)
}

// ListPublic retrieves the public project feed
func (s *ProjectService) ListPublic(filter dto.PublicProjectFilter) ([]models.Project, error) {
	return s.repo.FindPublic(filter.Category, filter.Featured)
}

// Get retrieves a project by ID
func (s *ProjectService) Get(id string) (models.Project, error) {
	return s.repo.FindByID(id)
}

// GetBySlugPublic retrieves a visible, published project by slug
func (s *ProjectService) GetBySlugPublic(slug string) (models.Project, error) {
	return s.repo.FindBySlugPublic(slug)
}

// Create validates and inserts a project with its images. The slug must be
// unique; a collision rejects the create and leaves the existing record
// untouched.
func (s *ProjectService) Create(req dto.CreateProjectRequest, userID *string) (models.Project, error) {
	taken, err := s.repo.SlugExists(req.Slug, "")
	if err != nil {
		return models.Project{}, err
	}
	if taken {
		return models.Project{}, apperr.NewConflict("slug already in use: " + req.Slug)
	}

	if len(req.Images) > models.MaxProjectImages {
		return models.Project{}, apperr.NewValidation("images", "a project can have at most 3 images")
	}

	sortOrder, err := resolveSortOrder(req.Order, s.repo.NextSortOrder)
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Slug:         req.Slug,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		ShortDesc:    req.ShortDesc,
		Thumbnail:    req.Thumbnail,
		VideoURL:     req.VideoURL,
		DemoURL:      req.DemoURL,
		GithubURL:    req.GithubURL,
		Year:         req.Year,
		Duration:     req.Duration,
		Problem:      req.Problem,
		Solution:     req.Solution,
		Process:      req.Process,
		Learnings:    req.Learnings,
		Technologies: models.StringList(req.Technologies),
		Tags:         models.StringList(req.Tags),
		Featured:     req.Featured,
		Published:    req.Published,
		Visible:      resolveVisible(req.Visible),
		SortOrder:    sortOrder,
	}

	if req.Published {
		now := time.Now()
		project.PublishedAt = &now
	}

	for i, img := range req.Images {
		imageOrder := i + 1
		if img.Order != nil {
			imageOrder = *img.Order
		}
		project.Images = append(project.Images, models.ProjectImage{
			URL:       img.URL,
			Alt:       img.Alt,
			SortOrder: imageOrder,
		})
	}

	created, err := s.repo.Create(project)
	if err != nil {
		return models.Project{}, err
	}

	s.activity.Record(userID, models.ActionCreate, "project", created.ID,
		fmt.Sprintf("Created project %q", created.Title), nil)
	utils.FlushCache()
	return created, nil
}

// Update applies a partial update. Absent fields stay untouched; the slug
// is immutable.
func (s *ProjectService) Update(id string, req dto.UpdateProjectRequest, userID *string) (models.Project, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}

	fields := map[string]interface{}{}
	setString(fields, "title", req.Title)
	setString(fields, "category", req.Category)
	setString(fields, "description", req.Description)
	setString(fields, "short_desc", req.ShortDesc)
	setString(fields, "thumbnail", req.Thumbnail)
	setString(fields, "video_url", req.VideoURL)
	setString(fields, "demo_url", req.DemoURL)
	setString(fields, "github_url", req.GithubURL)
	setString(fields, "duration", req.Duration)
	setString(fields, "problem", req.Problem)
	setString(fields, "solution", req.Solution)
	setString(fields, "process", req.Process)
	setString(fields, "learnings", req.Learnings)
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Technologies != nil {
		fields["technologies"] = models.StringList(*req.Technologies)
	}
	if req.Tags != nil {
		fields["tags"] = models.StringList(*req.Tags)
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Published != nil {
		fields["published"] = *req.Published
		if *req.Published && existing.PublishedAt == nil {
			fields["published_at"] = time.Now()
		}
	}
	if req.Visible != nil {
		fields["visible"] = *req.Visible
	}
	if req.Order != nil {
		fields["sort_order"] = *req.Order
	}

	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.repo.Update(id, fields)
	if err != nil {
		return models.Project{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "project", id,
		fmt.Sprintf("Updated project %q", updated.Title), nil)
	utils.FlushCache()
	return updated, nil
}

// Delete removes a project and its images
func (s *ProjectService) Delete(id string, userID *string) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionDelete, "project", id,
		fmt.Sprintf("Deleted project %q", existing.Title), nil)
	utils.FlushCache()
	return nil
}

// BulkDelete removes a set of projects and writes one aggregated audit entry
func (s *ProjectService) BulkDelete(ids []string, userID *string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.NewValidation("ids", "no ids provided")
	}

	matched, titles, err := s.repo.RefsByIDs(ids)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.BulkDelete(ids)
	if err != nil {
		return 0, err
	}

	s.activity.Record(userID, models.ActionDelete, "project", models.BulkEntityID,
		fmt.Sprintf("Deleted %d projects", count),
		map[string]interface{}{"ids": matched, "names": titles})
	utils.FlushCache()
	return count, nil
}

// ListImages retrieves the gallery of a project
func (s *ProjectService) ListImages(projectID string) ([]models.ProjectImage, error) {
	if _, err := s.repo.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.repo.FindImages(projectID)
}

// AddImage appends a gallery image, enforcing the per-project cap
func (s *ProjectService) AddImage(projectID string, req dto.ProjectImageInput, userID *string) (models.ProjectImage, error) {
	if _, err := s.repo.FindByID(projectID); err != nil {
		return models.ProjectImage{}, err
	}

	count, err := s.repo.CountImages(projectID)
	if err != nil {
		return models.ProjectImage{}, err
	}

	imageOrder := int(count) + 1
	if req.Order != nil {
		imageOrder = *req.Order
	}

	image, err := s.repo.AddImage(models.ProjectImage{
		ProjectID: projectID,
		URL:       req.URL,
		Alt:       req.Alt,
		SortOrder: imageOrder,
	})
	if err != nil {
		return models.ProjectImage{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "project", projectID,
		"Added project image", nil)
	utils.FlushCache()
	return image, nil
}

// DeleteImage removes one gallery image of a project
func (s *ProjectService) DeleteImage(projectID, imageID string, userID *string) error {
	if err := s.repo.DeleteImage(projectID, imageID); err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionUpdate, "project", projectID,
		"Removed project image", nil)
	utils.FlushCache()
	return nil
}
