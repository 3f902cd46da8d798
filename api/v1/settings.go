package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

var settingsService = services.NewSettingsService()

// GetSettings returns the site settings for the admin view
func GetSettings(c *gin.Context) {
	settings, err := settingsService.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": settings})
}

// UpdateSettings writes the site settings, creating the row on first save
func UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	settings, err := settingsService.Update(req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": settings})
}

// PublicSettings returns the site settings for public pages, with defaults
// when no row exists
func PublicSettings(c *gin.Context) {
	data, err := utils.GetCached("public:settings", func() (interface{}, error) {
		return settingsService.Get()
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
