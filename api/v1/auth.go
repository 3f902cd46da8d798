package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
)

// Login godoc
// @Summary Authenticate an admin user
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "email and password are required"})
		return
	}

	response, err := services.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetCurrentUser godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Router /auth/me [get]
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	user, err := services.GetUser(userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}
