package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

var educationService = services.NewEducationService()

// ListEducation lists all education entries for the admin view
func ListEducation(c *gin.Context) {
	entries, err := educationService.ListAdmin(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entries})
}

// CreateEducation creates an education entry
func CreateEducation(c *gin.Context) {
	var req dto.CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "school, degree and startDate are required"})
		return
	}

	entry, err := educationService.Create(req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": entry})
}

// GetEducation retrieves an education entry by ID
func GetEducation(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	entry, err := educationService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entry})
}

// UpdateEducation partially updates an education entry
func UpdateEducation(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	entry, err := educationService.Update(id, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entry})
}

// DeleteEducation deletes an education entry
func DeleteEducation(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if err := educationService.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Education deleted"})
}

// BulkDeleteEducation deletes a set of education entries in one operation
func BulkDeleteEducation(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "ids are required"})
		return
	}

	count, err := educationService.BulkDelete(req.IDs, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Message: "Education entries deleted", Count: count})
}

// PublicEducation lists visible education entries in display order
func PublicEducation(c *gin.Context) {
	data, err := utils.GetCached("public:education", func() (interface{}, error) {
		return educationService.ListPublic()
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
