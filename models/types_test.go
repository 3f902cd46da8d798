package models

import (
	"testing"

	"portfolio-backend/apperr"
)

func TestStringListValue(t *testing.T) {
	cases := []struct {
		name string
		list StringList
		want string
	}{
		{"nil encodes as empty array", nil, "[]"},
		{"empty encodes as empty array", StringList{}, "[]"},
		{"elements keep order", StringList{"Go", "Postgres", "Docker"}, `["Go","Postgres","Docker"]`},
		{"duplicates survive", StringList{"Go", "Go"}, `["Go","Go"]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.list.Value()
			if err != nil {
				t.Fatalf("Value returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Value() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStringListScan(t *testing.T) {
	var list StringList
	if err := list.Scan(`["Go","Rust"]`); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(list) != 2 || list[0] != "Go" || list[1] != "Rust" {
		t.Errorf("Scan produced %v, want [Go Rust]", list)
	}
}

func TestStringListScanEmptyCell(t *testing.T) {
	for _, raw := range []interface{}{"", nil, []byte("")} {
		var list StringList
		if err := list.Scan(raw); err != nil {
			t.Fatalf("Scan(%v) returned error: %v", raw, err)
		}
		if list == nil || len(list) != 0 {
			t.Errorf("Scan(%v) produced %v, want empty list", raw, list)
		}
	}
}

func TestStringListScanJSONNull(t *testing.T) {
	var list StringList
	if err := list.Scan("null"); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("Scan(null) produced %v, want empty list", list)
	}
}

func TestStringListScanCorrupt(t *testing.T) {
	corrupt := []string{
		"Go,Postgres,Docker",
		"just a sentence",
		`{"not":"an array"}`,
		`[1,2,3]`,
	}

	for _, raw := range corrupt {
		var list StringList
		err := list.Scan(raw)
		if err == nil {
			t.Errorf("Scan(%q) succeeded, want corrupt data error", raw)
			continue
		}
		if !apperr.IsCorruptData(err) {
			t.Errorf("Scan(%q) returned %v, want corrupt data error", raw, err)
		}
	}
}

func TestJSONMapRoundTrip(t *testing.T) {
	m := JSONMap{"github": "https://github.com/someone"}
	encoded, err := m.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded JSONMap
	if err := decoded.Scan(encoded); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if decoded["github"] != "https://github.com/someone" {
		t.Errorf("round trip lost value, got %v", decoded)
	}
}

func TestJSONMapNilValue(t *testing.T) {
	var m JSONMap
	got, err := m.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if got != "{}" {
		t.Errorf("Value() = %v, want {}", got)
	}
}

func TestIsValidSkillCategory(t *testing.T) {
	if !IsValidSkillCategory("Backend") {
		t.Error("Backend should be a valid category")
	}
	if IsValidSkillCategory("backend") {
		t.Error("category match is case sensitive, backend should be rejected")
	}
	if IsValidSkillCategory("Astrology") {
		t.Error("Astrology should be rejected")
	}
}
