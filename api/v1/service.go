package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

var serviceService = services.NewServiceService()

// ListServices lists all service offerings for the admin view
func ListServices(c *gin.Context) {
	offerings, err := serviceService.ListAdmin(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": offerings})
}

// CreateService creates a service offering
func CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "title is required"})
		return
	}

	offering, err := serviceService.Create(req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": offering})
}

// GetService retrieves a service offering by ID
func GetService(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	offering, err := serviceService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": offering})
}

// UpdateService partially updates a service offering
func UpdateService(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	offering, err := serviceService.Update(id, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": offering})
}

// DeleteService deletes a service offering
func DeleteService(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if err := serviceService.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Service deleted"})
}

// BulkDeleteServices deletes a set of service offerings in one operation
func BulkDeleteServices(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "ids are required"})
		return
	}

	count, err := serviceService.BulkDelete(req.IDs, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Message: "Services deleted", Count: count})
}

// PublicServices lists visible service offerings
func PublicServices(c *gin.Context) {
	data, err := utils.GetCached("public:services", func() (interface{}, error) {
		return serviceService.ListPublic()
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
