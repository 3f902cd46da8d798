package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio-backend/apperr"
	"portfolio-backend/database"
	"portfolio-backend/models"
)

// ProjectRepository handles database operations for projects and their images
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAdmin retrieves all projects for the admin view, optionally filtered
// by a case-insensitive substring search over title, slug and category.
func (r *ProjectRepository) FindAdmin(search string) ([]models.Project, error) {
	var projects []models.Project
	db := database.DB.Preload("Images", imageOrder)

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where(
			"lower(title) LIKE lower(?) OR lower(slug) LIKE lower(?) OR lower(category) LIKE lower(?)",
			pattern, pattern, pattern,
		)
	}

	result := db.Order("created_at desc, id asc").Find(&projects)
	return projects, result.Error
}

// FindPublic retrieves visible, published projects for the public feed.
// Category and featured narrow the result when provided.
func (r *ProjectRepository) FindPublic(category string, featured *bool) ([]models.Project, error) {
	var projects []models.Project
	db := database.DB.Preload("Images", imageOrder).
		Where("visible = ? AND published = ?", true, true)

	if category != "" {
		db = db.Where("category = ?", category)
	}
	if featured != nil {
		db = db.Where("featured = ?", *featured)
	}

	result := db.Order("featured desc, created_at desc, id asc").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID with images
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Images", imageOrder).First(&project, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, apperr.NewNotFound("project", id)
	}
	return project, result.Error
}

// FindBySlugPublic retrieves a visible, published project by slug
func (r *ProjectRepository) FindBySlugPublic(slug string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Images", imageOrder).
		First(&project, "slug = ? AND visible = ? AND published = ?", slug, true, true)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, apperr.NewNotFound("project", slug)
	}
	return project, result.Error
}

// SlugExists checks whether a slug is already taken by another project.
// excludeID skips the project being updated; pass "" on create.
func (r *ProjectRepository) SlugExists(slug, excludeID string) (bool, error) {
	var count int64
	db := database.DB.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// Create inserts a project together with its images in one transaction.
// Either the project and every image row land, or none do. The unique index
// backstops slug races that slip past the pre-insert check.
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&project).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return project, apperr.NewConflict("slug already in use: " + project.Slug)
	}
	return project, err
}

// Update applies the supplied column values to a project and reloads it
func (r *ProjectRepository) Update(id string, fields map[string]interface{}) (models.Project, error) {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Project{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Project{}, apperr.NewNotFound("project", id)
	}
	return r.FindByID(id)
}

// Delete removes a project and all of its images in one transaction,
// so no orphan image row can remain.
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NewNotFound("project", id)
		}
		return nil
	})
}

// BulkDelete removes the projects with the given ids and their images as
// one set operation. Missing ids are tolerated; the count reflects rows
// actually deleted.
func (r *ProjectRepository) BulkDelete(ids []string) (int64, error) {
	var deleted int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id IN ?", ids).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&models.Project{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}

// RefsByIDs returns ids and titles of the projects that exist among ids,
// index-aligned, for audit metadata. Unknown ids drop out of both slices.
func (r *ProjectRepository) RefsByIDs(ids []string) ([]string, []string, error) {
	var projects []models.Project
	err := database.DB.Select("id", "title").Where("id IN ?", ids).Find(&projects).Error
	if err != nil {
		return nil, nil, err
	}

	matched := make([]string, 0, len(projects))
	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		matched = append(matched, p.ID)
		titles = append(titles, p.Title)
	}
	return matched, titles, nil
}

// NextSortOrder computes max(sort_order)+1 across all projects
func (r *ProjectRepository) NextSortOrder() (int, error) {
	return nextSortOrder(&models.Project{})
}

// CountImages counts the images owned by a project
func (r *ProjectRepository) CountImages(projectID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.ProjectImage{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// FindImages retrieves the images of a project in display order
func (r *ProjectRepository) FindImages(projectID string) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	err := database.DB.Where("project_id = ?", projectID).
		Order("sort_order asc, id asc").Find(&images).Error
	return images, err
}

// AddImage inserts an image, enforcing the per-project cap inside the
// insertion transaction. The parent row is locked first so concurrent
// inserts serialize on the count check.
func (r *ProjectRepository) AddImage(image models.ProjectImage) (models.ProjectImage, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&project, "id = ?", image.ProjectID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("project", image.ProjectID)
		}
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.ProjectImage{}).
			Where("project_id = ?", image.ProjectID).Count(&count).Error; err != nil {
			return err
		}
		if count >= models.MaxProjectImages {
			return apperr.NewValidation("images", "a project can have at most 3 images")
		}
		return tx.Create(&image).Error
	})
	return image, err
}

// DeleteImage removes a single image of a project
func (r *ProjectRepository) DeleteImage(projectID, imageID string) error {
	result := database.DB.Where("project_id = ?", projectID).
		Delete(&models.ProjectImage{}, "id = ?", imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("project image", imageID)
	}
	return nil
}

// imageOrder sorts preloaded images for display
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc, id asc")
}
