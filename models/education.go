package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Education represents one entry of the education history
type Education struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid"`
	School       string     `json:"school" gorm:"not null"`
	Degree       string     `json:"degree" gorm:"not null"`
	Field        string     `json:"field"`
	StartDate    time.Time  `json:"startDate" gorm:"not null"`
	EndDate      *time.Time `json:"endDate"`
	Current      bool       `json:"current"`
	GPA          string     `json:"gpa"`
	Description  string     `json:"description" gorm:"type:text"`
	Location     string     `json:"location"`
	Achievements StringList `json:"achievements" gorm:"type:text"`
	Visible      bool       `json:"visible" gorm:"not null"`
	SortOrder    int        `json:"order" gorm:"column:sort_order;index"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the ID if not already set
func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
