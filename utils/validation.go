package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether s looks like an email address. This is a
// deliverability hint, not an RFC 5322 parser.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
