package models

import "time"

// SiteSettingsID is the primary key of the single settings row.
const SiteSettingsID = 1

// SiteSettings holds the site-wide content. Exactly one row ever exists;
// reads fall back to defaults when the row is absent.
type SiteSettings struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	HeroTitle        string    `json:"heroTitle"`
	HeroSubtitle     string    `json:"heroSubtitle"`
	HeroBio          string    `json:"heroBio" gorm:"type:text"`
	AboutDescription string    `json:"aboutDescription" gorm:"type:text"`
	AboutBio1        string    `json:"aboutBio1" gorm:"type:text"`
	AboutBio2        string    `json:"aboutBio2" gorm:"type:text"`
	AboutBio3        string    `json:"aboutBio3" gorm:"type:text"`
	CVFileURL        string    `json:"cvFileUrl"`
	ContactEmail     string    `json:"contactEmail"`
	ContactPhone     string    `json:"contactPhone"`
	ContactLocation  string    `json:"contactLocation"`
	SocialLinks      JSONMap   `json:"socialLinks" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// DefaultSiteSettings returns the fallback used when no settings row exists
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:          SiteSettingsID,
		SocialLinks: JSONMap{},
	}
}
