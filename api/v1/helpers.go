package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/apperr"
)

// respondError translates an application error into the matching HTTP
// status and a structured payload. Internal causes are logged server-side
// only, never echoed to the client.
func respondError(c *gin.Context, err error) {
	var unauthorized *apperr.UnauthorizedError
	var upstream *apperr.UpstreamError

	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case apperr.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
	case apperr.IsRateLimited(err):
		c.JSON(http.StatusTooManyRequests, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &upstream):
		log.Printf("Upstream failure (%s): %v", upstream.Service, upstream.Cause)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	case apperr.IsCorruptData(err):
		log.Printf("Corrupt stored data served on read path: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "corrupt stored data"})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
	}
}

// currentUserID returns the authenticated user's id, or nil on public paths
func currentUserID(c *gin.Context) *string {
	if value, exists := c.Get("userId"); exists {
		if id, ok := value.(string); ok && id != "" {
			return &id
		}
	}
	return nil
}

// requireParam pulls a path parameter and fails the request when empty
func requireParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": name + " is required"})
		return "", false
	}
	return value, true
}
