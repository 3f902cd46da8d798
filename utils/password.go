package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecurePassword creates a random password of the specified length.
// Used when bootstrapping the admin account without ADMIN_PASSWORD set.
func GenerateSecurePassword(length int) string {
	if length < 8 {
		length = 8
	}

	b := make([]byte, length*2)
	if _, err := rand.Read(b); err != nil {
		// In case of error, return a hardcoded but reasonably secure fallback
		return "Temp@Password123"
	}

	password := base64.StdEncoding.EncodeToString(b)
	if len(password) > length {
		password = password[:length]
	}
	return password
}
