package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"portfolio-backend/apperr"
)

// StringList is an ordered sequence of strings persisted as a JSON array
// inside a text column. The encoded form never leaks past the model layer:
// GORM calls Value on write and Scan on read. Order is caller-meaningful,
// so there is no deduplication and no sorting.
type StringList []string

// Value implements driver.Valuer. A nil or empty list encodes as "[]",
// never as NULL or an empty string.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// Scan implements sql.Scanner. Empty and NULL cells decode to an empty
// list; anything non-empty that is not a JSON array of strings is corrupt
// data and fails loudly instead of propagating a wrong value.
func (l *StringList) Scan(value interface{}) error {
	raw, err := rawText(value)
	if err != nil {
		return err
	}
	if raw == "" {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return apperr.NewCorruptData(raw, "not a JSON array of strings")
	}
	if items == nil {
		items = []string{}
	}
	*l = StringList(items)
	return nil
}

// JSONMap is a string-to-string object persisted as JSON text. Used for
// the site settings social links.
type JSONMap map[string]string

// Value implements driver.Valuer. A nil map encodes as "{}".
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	encoded, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value interface{}) error {
	raw, err := rawText(value)
	if err != nil {
		return err
	}
	if raw == "" {
		*m = JSONMap{}
		return nil
	}

	var entries map[string]string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return apperr.NewCorruptData(raw, "not a JSON string map")
	}
	if entries == nil {
		entries = map[string]string{}
	}
	*m = JSONMap(entries)
	return nil
}

func rawText(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported column type %T", value)
	}
}
