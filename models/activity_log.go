package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity log actions. Stored lowercased.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionClear  = "clear"
)

// BulkEntityID is the sentinel entity id used for multi-record operations.
const BulkEntityID = "bulk"

// ActivityLog is an append-only record of an administrative mutation.
// Rows are never updated; a failed write never fails the mutation it describes.
type ActivityLog struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      *string   `json:"userId" gorm:"type:uuid"`
	Action      string    `json:"action" gorm:"not null;index"`
	Entity      string    `json:"entity" gorm:"not null;index"`
	EntityID    string    `json:"entityId" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Metadata    string    `json:"metadata" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BeforeCreate assigns the ID if not already set
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
