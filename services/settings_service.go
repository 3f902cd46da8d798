package services

import (
	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
	"portfolio-backend/utils"
)

// SettingsService handles the single site settings row
type SettingsService struct {
	repo     *repositories.SettingsRepository
	activity *ActivityService
}

// NewSettingsService creates a new settings service instance
func NewSettingsService() *SettingsService {
	return &SettingsService{
		repo:     repositories.NewSettingsRepository(),
		activity: NewActivityService(),
	}
}

// NewSettingsServiceWith wires explicit collaborators, used by tests
func NewSettingsServiceWith(repo *repositories.SettingsRepository, activity *ActivityService) *SettingsService {
	return &SettingsService{repo: repo, activity: activity}
}

// Get retrieves the settings, falling back to defaults when no row exists
func (s *SettingsService) Get() (models.SiteSettings, error) {
	return s.repo.Get()
}

// Update writes the settings row, creating it on first save
func (s *SettingsService) Update(req dto.UpdateSettingsRequest, userID *string) (models.SiteSettings, error) {
	settings := models.SiteSettings{
		HeroTitle:        req.HeroTitle,
		HeroSubtitle:     req.HeroSubtitle,
		HeroBio:          req.HeroBio,
		AboutDescription: req.AboutDescription,
		AboutBio1:        req.AboutBio1,
		AboutBio2:        req.AboutBio2,
		AboutBio3:        req.AboutBio3,
		CVFileURL:        req.CVFileURL,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		ContactLocation:  req.ContactLocation,
		SocialLinks:      models.JSONMap(req.SocialLinks),
	}

	updated, err := s.repo.Upsert(settings)
	if err != nil {
		return models.SiteSettings{}, err
	}

	s.activity.Record(userID, models.ActionUpdate, "settings", "1",
		"Updated site settings", nil)
	utils.FlushCache()
	return updated, nil
}
