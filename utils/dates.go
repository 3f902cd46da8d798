package utils

import (
	"time"

	"portfolio-backend/apperr"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
}

// ParseDate parses a date supplied as a string by the admin UI.
// An unparseable value is a validation failure on the named field.
func ParseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.NewValidation(field, "invalid date: "+value)
}

// ParseOptionalDate parses a date that may be absent. Empty input yields nil.
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
