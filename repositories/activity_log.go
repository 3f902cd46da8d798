package repositories

import (
	"portfolio-backend/database"
	"portfolio-backend/models"
)

// ActivityLogRepository handles database operations for the append-only activity log
type ActivityLogRepository struct{}

// NewActivityLogRepository creates a new activity log repository instance
func NewActivityLogRepository() *ActivityLogRepository {
	return &ActivityLogRepository{}
}

// Append inserts one immutable log row
func (r *ActivityLogRepository) Append(entry models.ActivityLog) error {
	return database.DB.Create(&entry).Error
}

// FindPage retrieves log rows newest first with the total count
func (r *ActivityLogRepository) FindPage(page, pageSize int) ([]models.ActivityLog, int64, error) {
	var entries []models.ActivityLog
	var totalCount int64

	if err := database.DB.Model(&models.ActivityLog{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := database.DB.Order("created_at desc, id asc").
		Limit(pageSize).Offset(offset).Find(&entries).Error
	return entries, totalCount, err
}

// DeleteAll removes every log row and returns how many were deleted
func (r *ActivityLogRepository) DeleteAll() (int64, error) {
	result := database.DB.Where("1 = 1").Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}
