package services

import (
	"testing"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/repositories"
)

func newSkillServiceForTest() *SkillService {
	return NewSkillServiceWith(repositories.NewSkillRepository(), NewActivityService())
}

func TestSkillCreateRejectsUnknownCategory(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newSkillServiceForTest()
	_, err := svc.Create(dto.CreateSkillRequest{Category: "Wizardry", Name: "Go"}, nil)
	if !apperr.IsValidation(err) {
		t.Errorf("unknown category returned %v, want validation error", err)
	}

	created, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Go", Level: 90}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Category != "Backend" {
		t.Errorf("category = %q, want Backend", created.Category)
	}
}

func TestSkillUpdateRejectsUnknownCategory(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newSkillServiceForTest()
	created, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Go"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bad := "Wizardry"
	if _, err := svc.Update(created.ID, dto.UpdateSkillRequest{Category: &bad}, nil); !apperr.IsValidation(err) {
		t.Errorf("unknown category on update returned %v, want validation error", err)
	}

	good := "Tools"
	updated, err := svc.Update(created.ID, dto.UpdateSkillRequest{Category: &good}, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Category != "Tools" {
		t.Errorf("category after update = %q, want Tools", updated.Category)
	}
}

func TestSkillSortOrderAssignment(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newSkillServiceForTest()

	first, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Go"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.SortOrder != 1 {
		t.Errorf("first skill sort order = %d, want 1", first.SortOrder)
	}

	explicit := 10
	second, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Postgres", Order: &explicit}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if second.SortOrder != 10 {
		t.Errorf("explicit sort order = %d, want 10", second.SortOrder)
	}

	third, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Redis"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if third.SortOrder != 11 {
		t.Errorf("sort order after explicit 10 = %d, want 11", third.SortOrder)
	}
}

func TestSkillHiddenFromPublicListing(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newSkillServiceForTest()
	hidden := false
	if _, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Go", Visible: &hidden}, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Postgres"}, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	public, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("ListPublic returned error: %v", err)
	}
	if len(public) != 1 || public[0].Name != "Postgres" {
		t.Errorf("public listing = %v, want only Postgres", public)
	}

	all, err := svc.ListAdmin("")
	if err != nil {
		t.Fatalf("ListAdmin returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin listing has %d skills, want 2", len(all))
	}
}
