package dto

import "portfolio-backend/models"

// ActivityListResponse represents a page of activity log entries
type ActivityListResponse struct {
	Entries    []models.ActivityLog `json:"entries"`
	TotalCount int64                `json:"totalCount"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
}

// UploadResponse reports where an uploaded file landed on the media host
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Type     string `json:"type"`
}
