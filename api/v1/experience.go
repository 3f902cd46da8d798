package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

var experienceService = services.NewExperienceService()

// ListExperience lists all work experience entries for the admin view
func ListExperience(c *gin.Context) {
	entries, err := experienceService.ListAdmin(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entries})
}

// CreateExperience creates a work experience entry
func CreateExperience(c *gin.Context) {
	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "company, position and startDate are required"})
		return
	}

	entry, err := experienceService.Create(req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": entry})
}

// GetExperience retrieves an experience entry by ID
func GetExperience(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	entry, err := experienceService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entry})
}

// UpdateExperience partially updates an experience entry
func UpdateExperience(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	entry, err := experienceService.Update(id, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entry})
}

// DeleteExperience deletes an experience entry
func DeleteExperience(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if err := experienceService.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Experience deleted"})
}

// BulkDeleteExperience deletes a set of experience entries in one operation
func BulkDeleteExperience(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "ids are required"})
		return
	}

	count, err := experienceService.BulkDelete(req.IDs, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Message: "Experience entries deleted", Count: count})
}

// PublicExperience lists visible experience entries, current positions first
func PublicExperience(c *gin.Context) {
	data, err := utils.GetCached("public:experience", func() (interface{}, error) {
		return experienceService.ListPublic()
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
