package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkExperience represents one entry of the work history
type WorkExperience struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	Company     string     `json:"company" gorm:"not null"`
	Position    string     `json:"position" gorm:"not null"`
	StartDate   time.Time  `json:"startDate" gorm:"not null"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description string     `json:"description" gorm:"type:text"`
	Location    string     `json:"location"`
	Type        string     `json:"type"`
	Visible     bool       `json:"visible" gorm:"not null"`
	SortOrder   int        `json:"order" gorm:"column:sort_order;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the ID if not already set
func (e *WorkExperience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
