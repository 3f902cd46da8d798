package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/lib/storage"
)

// Upload size caps per file kind, in bytes
const (
	maxImageSize    = 20 << 20
	maxVideoSize    = 541 << 20
	maxDocumentSize = 50 << 20
)

var allowedMimeTypes = map[string]map[string]bool{
	"image": {
		"image/jpeg":    true,
		"image/png":     true,
		"image/gif":     true,
		"image/webp":    true,
		"image/svg+xml": true,
	},
	"video": {
		"video/mp4":       true,
		"video/webm":      true,
		"video/quicktime": true,
	},
	"document": {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"text/plain": true,
	},
}

// UploadService validates uploaded files and proxies them to the media host
type UploadService struct {
	uploader storage.Uploader
}

// NewUploadService creates an upload service over the given media host client
func NewUploadService(uploader storage.Uploader) *UploadService {
	return &UploadService{uploader: uploader}
}

// Upload checks the file kind, mime type and size, then stores the file
// under a generated object key and returns its public URL
func (s *UploadService) Upload(fileHeader *multipart.FileHeader, kind string) (dto.UploadResponse, error) {
	kind = strings.ToLower(kind)
	allowed, ok := allowedMimeTypes[kind]
	if !ok {
		return dto.UploadResponse{}, apperr.NewValidation("type", "type must be image, video or document")
	}

	if fileHeader.Size > sizeLimit(kind) {
		return dto.UploadResponse{}, apperr.NewValidation("file", "file too large")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowed[contentType] {
		return dto.UploadResponse{}, apperr.NewValidation("file", "unsupported file type: "+contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return dto.UploadResponse{}, apperr.NewValidation("file", "unreadable file")
	}
	defer file.Close()

	objectKey := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	url, err := s.uploader.Upload(objectKey, file, contentType)
	if err != nil {
		return dto.UploadResponse{}, apperr.NewUpstream("media host", err)
	}

	return dto.UploadResponse{
		URL:      url,
		FileName: fileHeader.Filename,
		Type:     kind,
	}, nil
}

func sizeLimit(kind string) int64 {
	switch kind {
	case "video":
		return maxVideoSize
	case "document":
		return maxDocumentSize
	default:
		return maxImageSize
	}
}
