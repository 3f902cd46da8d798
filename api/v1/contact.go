package v1

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
)

var (
	contactOnce    sync.Once
	contactService *services.ContactService
)

// contactSvc builds the contact service on first use, after main has
// loaded the environment. Building it at package init would snapshot the
// SMTP and rate-limit settings before .env is read.
func contactSvc() *services.ContactService {
	contactOnce.Do(func() {
		if contactService == nil {
			contactService = services.NewContactService()
		}
	})
	return contactService
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags public
// @Accept json
// @Produce json
// @Router /contact [post]
func SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "name, email and message are required"})
		return
	}

	if err := contactSvc().Submit(req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message sent"})
}
