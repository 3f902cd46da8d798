package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

var projectService = services.NewProjectService()

// ListProjects godoc
// @Summary List all projects for the admin view
// @Tags projects
// @Produce json
// @Param search query string false "Search term for title/slug/category"
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	projects, err := projectService.ListAdmin(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": projects})
}

// CreateProject godoc
// @Summary Create a project with up to 3 gallery images
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "slug and title are required"})
		return
	}

	project, err := projectService.Create(req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": project})
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	project, err := projectService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": project})
}

// UpdateProject godoc
// @Summary Partially update a project
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	project, err := projectService.Update(id, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": project})
}

// DeleteProject godoc
// @Summary Delete a project and its images
// @Tags projects
// @Produce json
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if err := projectService.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Project deleted"})
}

// BulkDeleteProjects godoc
// @Summary Delete a set of projects in one operation
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects/bulk [delete]
func BulkDeleteProjects(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "ids are required"})
		return
	}

	count, err := projectService.BulkDelete(req.IDs, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Message: "Projects deleted", Count: count})
}

// ListProjectImages godoc
// @Summary List the gallery images of a project
// @Tags projects
// @Produce json
// @Router /projects/{id}/images [get]
func ListProjectImages(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	images, err := projectService.ListImages(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": images})
}

// AddProjectImage godoc
// @Summary Add a gallery image to a project (max 3)
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects/{id}/images [post]
func AddProjectImage(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var req dto.ProjectImageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "url is required"})
		return
	}

	image, err := projectService.AddImage(id, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": image})
}

// DeleteProjectImage godoc
// @Summary Remove a gallery image from a project
// @Tags projects
// @Produce json
// @Router /projects/{id}/images/{imageId} [delete]
func DeleteProjectImage(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := requireParam(c, "imageId")
	if !ok {
		return
	}

	if err := projectService.DeleteImage(id, imageID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Image deleted"})
}

// PublicProjects godoc
// @Summary List visible, published projects
// @Tags public
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query bool false "Only featured projects"
// @Router /public/projects [get]
func PublicProjects(c *gin.Context) {
	filter := dto.PublicProjectFilter{Category: c.Query("category")}
	if raw := c.Query("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	cacheKey := "public:projects:" + filter.Category + ":" + c.Query("featured")
	data, err := utils.GetCached(cacheKey, func() (interface{}, error) {
		return projectService.ListPublic(filter)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

// PublicProjectBySlug godoc
// @Summary Get a visible, published project by slug
// @Tags public
// @Produce json
// @Router /public/projects/{slug} [get]
func PublicProjectBySlug(c *gin.Context) {
	slug, ok := requireParam(c, "slug")
	if !ok {
		return
	}

	data, err := utils.GetCached("public:project:"+slug, func() (interface{}, error) {
		return projectService.GetBySlugPublic(slug)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
