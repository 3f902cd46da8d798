package v1

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"portfolio-backend/lib/storage"
	"portfolio-backend/services"
)

var (
	uploadOnce    sync.Once
	uploadService *services.UploadService
)

// uploadSvc builds the upload service lazily so a missing OSS configuration
// fails the upload route, not server startup.
func uploadSvc() *services.UploadService {
	uploadOnce.Do(func() {
		client, err := storage.NewOSSClient()
		if err != nil {
			log.Printf("⚠️ Media host not configured: %v", err)
			return
		}
		uploadService = services.NewUploadService(client)
	})
	return uploadService
}

// UploadFile godoc
// @Summary Upload a media file to the media host
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Router /upload [post]
func UploadFile(c *gin.Context) {
	svc := uploadSvc()
	if svc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "media host unavailable"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "file is required"})
		return
	}

	response, err := svc.Upload(fileHeader, c.PostForm("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
