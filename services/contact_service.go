package services

import (
	"time"
	"unicode/utf8"

	"portfolio-backend/apperr"
	"portfolio-backend/config"
	"portfolio-backend/dto"
	"portfolio-backend/lib/mailer"
	"portfolio-backend/lib/ratelimit"
	"portfolio-backend/utils"
)

const (
	maxContactNameLength    = 100
	minContactMessageLength = 10
	maxContactMessageLength = 500
)

// ContactService validates contact form submissions, gates repeat senders
// and dispatches the message to the site owner by email
type ContactService struct {
	limiter *ratelimit.Limiter
	mailer  mailer.Mailer
}

// NewContactService creates a contact service with the SMTP mailer and a
// limiter configured from the environment
func NewContactService() *ContactService {
	maxPerWindow := config.GetEnvInt("CONTACT_RATE_LIMIT", 5)
	window := config.GetEnvDuration("CONTACT_RATE_WINDOW", 5*time.Minute)

	return &ContactService{
		limiter: ratelimit.New(maxPerWindow, window),
		mailer:  mailer.NewFromEnv(),
	}
}

// NewContactServiceWith wires explicit collaborators, used by tests
func NewContactServiceWith(limiter *ratelimit.Limiter, m mailer.Mailer) *ContactService {
	return &ContactService{limiter: limiter, mailer: m}
}

// Submit validates the submission, applies the rate limit keyed on the
// sender's email and dispatches one outbound message
func (s *ContactService) Submit(req dto.ContactRequest) error {
	if utf8.RuneCountInString(req.Name) > maxContactNameLength {
		return apperr.NewValidation("name", "name too long")
	}
	if !utils.IsValidEmail(req.Email) {
		return apperr.NewValidation("email", "invalid email address")
	}

	messageLength := utf8.RuneCountInString(req.Message)
	if messageLength < minContactMessageLength {
		return apperr.NewValidation("message", "message too short")
	}
	if messageLength > maxContactMessageLength {
		return apperr.NewValidation("message", "message too long")
	}

	if !s.limiter.Allow(req.Email) {
		return apperr.NewRateLimited("too many requests, please try again later")
	}

	if err := s.mailer.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		return apperr.NewUpstream("mail service", err)
	}
	return nil
}
