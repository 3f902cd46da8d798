package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxProjectImages caps the gallery size per project, enforced at insertion time.
const MaxProjectImages = 3

// Project represents a portfolio project
type Project struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Category     string     `json:"category"`
	Description  string     `json:"description" gorm:"type:text"`
	ShortDesc    string     `json:"shortDesc"`
	Thumbnail    string     `json:"thumbnail"`
	VideoURL     string     `json:"videoUrl"`
	DemoURL      string     `json:"demoUrl"`
	GithubURL    string     `json:"githubUrl"`
	Year         int        `json:"year"`
	Duration     string     `json:"duration"`
	Problem      string     `json:"problem" gorm:"type:text"`
	Solution     string     `json:"solution" gorm:"type:text"`
	Process      string     `json:"process" gorm:"type:text"`
	Learnings    string     `json:"learnings" gorm:"type:text"`
	Technologies StringList `json:"technologies" gorm:"type:text"`
	Tags         StringList `json:"tags" gorm:"type:text"`
	Featured     bool       `json:"featured"`
	Published    bool       `json:"published"`
	PublishedAt  *time.Time `json:"publishedAt"`
	Visible      bool       `json:"visible" gorm:"not null"`
	SortOrder    int        `json:"order" gorm:"column:sort_order;index"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Relations
	Images []ProjectImage `json:"images" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the ID if not already set
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProjectImage represents a gallery image owned by exactly one project.
// Images are removed together with their project.
type ProjectImage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Alt       string    `json:"alt"`
	SortOrder int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the ID if not already set
func (i *ProjectImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
