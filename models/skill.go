package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategories is the closed set of categories a skill may belong to.
// Category is validated at create/update time; legacy rows written before
// enforcement are audited by the repair script.
var SkillCategories = []string{
	"Frontend",
	"Backend",
	"Database",
	"DevOps",
	"Mobile",
	"Design",
	"Tools",
	"Other",
}

// IsValidSkillCategory reports whether category is in the allowed set
func IsValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Skill represents a single skill shown on the public site
type Skill struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Category  string    `json:"category" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Level     int       `json:"level"`
	Icon      string    `json:"icon"`
	Visible   bool      `json:"visible" gorm:"not null"`
	SortOrder int       `json:"order" gorm:"column:sort_order;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the ID if not already set
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
