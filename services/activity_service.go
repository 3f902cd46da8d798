package services

import (
	"encoding/json"
	"fmt"
	"log"

	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
)

// ActivityStore is the persistence the activity service writes through.
// Narrow on purpose: tests substitute a failing store to verify that audit
// failures never surface.
type ActivityStore interface {
	Append(entry models.ActivityLog) error
	FindPage(page, pageSize int) ([]models.ActivityLog, int64, error)
	DeleteAll() (int64, error)
}

// ActivityService appends immutable audit rows for every admin mutation
type ActivityService struct {
	store ActivityStore
}

// NewActivityService creates an activity service over the database repository
func NewActivityService() *ActivityService {
	return &ActivityService{store: repositories.NewActivityLogRepository()}
}

// NewActivityServiceWithStore creates an activity service over a custom store
func NewActivityServiceWithStore(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Record appends one audit row describing a mutation that already
// succeeded. A failed append is logged and swallowed: the audit trail is a
// side effect and must never turn a successful mutation into a failure.
func (s *ActivityService) Record(userID *string, action, entity, entityID, description string, metadata interface{}) {
	entry := models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Description: description,
	}

	if metadata != nil {
		encoded, err := json.Marshal(metadata)
		if err != nil {
			log.Printf("Warning: failed to encode activity metadata for %s %s: %v", action, entity, err)
		} else {
			entry.Metadata = string(encoded)
		}
	}

	if err := s.store.Append(entry); err != nil {
		log.Printf("Warning: failed to record activity %s %s %s: %v", action, entity, entityID, err)
	}
}

// List retrieves a page of audit rows, newest first
func (s *ActivityService) List(page, pageSize int) (dto.ActivityListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	entries, totalCount, err := s.store.FindPage(page, pageSize)
	if err != nil {
		return dto.ActivityListResponse{}, err
	}

	return dto.ActivityListResponse{
		Entries:    entries,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Clear deletes every audit row, then records one new row describing the
// clear. Clearing the log is not exempt from being logged.
func (s *ActivityService) Clear(userID *string) (int64, error) {
	count, err := s.store.DeleteAll()
	if err != nil {
		return 0, err
	}

	s.Record(userID, models.ActionClear, "activity_log", "all",
		fmt.Sprintf("Cleared %d activity log entries", count), nil)
	return count, nil
}
