package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"portfolio-backend/config"
)

// Mailer delivers contact form submissions to the site owner
type Mailer interface {
	SendContactMessage(name, email, message string) error
}

// SMTPMailer sends mail through an SMTP relay using gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewFromEnv builds an SMTPMailer from SMTP_* environment variables
func NewFromEnv() *SMTPMailer {
	host := config.GetEnv("SMTP_HOST", "localhost")
	port := config.GetEnvInt("SMTP_PORT", 587)
	user := config.GetEnv("SMTP_USER", "")
	password := config.GetEnv("SMTP_PASSWORD", "")

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   config.GetEnv("SMTP_FROM", user),
		to:     config.GetEnv("CONTACT_RECIPIENT", user),
	}
}

// SendContactMessage dispatches one email for a contact form submission.
// The visitor's address goes into Reply-To so the owner can answer directly.
func (m *SMTPMailer) SendContactMessage(name, email, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Portfolio contact from %s", name))
	msg.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", name, email, message))

	return m.dialer.DialAndSend(msg)
}
