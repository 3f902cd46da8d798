package repositories

import (
	"testing"
	"time"

	"portfolio-backend/models"
)

func date(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func TestExperiencePublicOrdering(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	repo := NewExperienceRepository()
	seed := []models.WorkExperience{
		{Company: "Old Corp", Position: "Intern", StartDate: date(2018, 6), Visible: true},
		{Company: "Now Inc", Position: "Engineer", StartDate: date(2022, 1), Current: true, Visible: true},
		{Company: "Mid Ltd", Position: "Developer", StartDate: date(2020, 3), Visible: true},
		{Company: "Secret", Position: "Consultant", StartDate: date(2023, 1), Visible: false},
	}
	for _, e := range seed {
		if _, err := repo.Create(e); err != nil {
			t.Fatalf("Failed to seed experience at %s: %v", e.Company, err)
		}
	}

	entries, err := repo.FindPublic()
	if err != nil {
		t.Fatalf("FindPublic returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("FindPublic returned %d entries, want 3", len(entries))
	}

	// Current position first, then most recent start date
	want := []string{"Now Inc", "Mid Ltd", "Old Corp"}
	for i, company := range want {
		if entries[i].Company != company {
			t.Errorf("position %d = %q, want %q", i, entries[i].Company, company)
		}
	}
}

func TestExperienceRefsByIDs(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	repo := NewExperienceRepository()
	created, err := repo.Create(models.WorkExperience{
		Company: "Now Inc", Position: "Engineer", StartDate: date(2022, 1), Visible: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Unknown ids drop out of both slices so they stay index-aligned
	ids, names, err := repo.RefsByIDs([]string{created.ID, "no-such-id"})
	if err != nil {
		t.Fatalf("RefsByIDs returned error: %v", err)
	}
	if len(ids) != 1 || ids[0] != created.ID {
		t.Errorf("RefsByIDs ids = %v, want [%s]", ids, created.ID)
	}
	if len(names) != 1 || names[0] != "Engineer at Now Inc" {
		t.Errorf("RefsByIDs names = %v, want [Engineer at Now Inc]", names)
	}
}
