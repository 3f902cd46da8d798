package dto

// UpdateSettingsRequest represents the full settings payload written by the admin UI
type UpdateSettingsRequest struct {
	HeroTitle        string            `json:"heroTitle"`
	HeroSubtitle     string            `json:"heroSubtitle"`
	HeroBio          string            `json:"heroBio"`
	AboutDescription string            `json:"aboutDescription"`
	AboutBio1        string            `json:"aboutBio1"`
	AboutBio2        string            `json:"aboutBio2"`
	AboutBio3        string            `json:"aboutBio3"`
	CVFileURL        string            `json:"cvFileUrl"`
	ContactEmail     string            `json:"contactEmail"`
	ContactPhone     string            `json:"contactPhone"`
	ContactLocation  string            `json:"contactLocation"`
	SocialLinks      map[string]string `json:"socialLinks"`
}
