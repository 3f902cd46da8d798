package services

import (
	"errors"
	"testing"

	"portfolio-backend/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
)

// failingStore rejects every append, simulating a broken audit sink
type failingStore struct{}

func (failingStore) Append(models.ActivityLog) error { return errors.New("sink unavailable") }
func (failingStore) FindPage(int, int) ([]models.ActivityLog, int64, error) {
	return nil, 0, errors.New("sink unavailable")
}
func (failingStore) DeleteAll() (int64, error) { return 0, errors.New("sink unavailable") }

// memoryStore collects appended rows in a slice
type memoryStore struct {
	rows []models.ActivityLog
}

func (s *memoryStore) Append(entry models.ActivityLog) error {
	s.rows = append(s.rows, entry)
	return nil
}

func (s *memoryStore) FindPage(page, pageSize int) ([]models.ActivityLog, int64, error) {
	return s.rows, int64(len(s.rows)), nil
}

func (s *memoryStore) DeleteAll() (int64, error) {
	count := int64(len(s.rows))
	s.rows = nil
	return count, nil
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	svc := NewActivityServiceWithStore(failingStore{})

	// Must not panic or surface the failure in any way
	svc.Record(nil, models.ActionCreate, "project", "p1", "Created project", nil)
}

func TestRecordFailureDoesNotFailMutation(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := NewSkillServiceWith(repositories.NewSkillRepository(), NewActivityServiceWithStore(failingStore{}))

	created, err := svc.Create(dto.CreateSkillRequest{Category: "Backend", Name: "Go"}, nil)
	if err != nil {
		t.Fatalf("mutation failed because the audit sink is down: %v", err)
	}
	if created.ID == "" {
		t.Error("skill was not persisted")
	}
}

func TestRecordEncodesMetadata(t *testing.T) {
	store := &memoryStore{}
	svc := NewActivityServiceWithStore(store)

	svc.Record(nil, models.ActionDelete, "skill", models.BulkEntityID,
		"Deleted 2 skills", map[string]interface{}{"ids": []string{"a", "b"}})

	if len(store.rows) != 1 {
		t.Fatalf("expected one row, got %d", len(store.rows))
	}
	if store.rows[0].Metadata == "" {
		t.Error("metadata was not encoded")
	}
	if store.rows[0].EntityID != "bulk" {
		t.Errorf("entity id = %q, want bulk", store.rows[0].EntityID)
	}
}

func TestClearLogsItself(t *testing.T) {
	store := &memoryStore{
		rows: []models.ActivityLog{
			{Action: models.ActionCreate, Entity: "project", EntityID: "p1"},
			{Action: models.ActionUpdate, Entity: "project", EntityID: "p1"},
		},
	}
	svc := NewActivityServiceWithStore(store)

	count, err := svc.Clear(nil)
	if err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("Clear removed %d rows, want 2", count)
	}

	// The clear itself lands as the only remaining row
	if len(store.rows) != 1 {
		t.Fatalf("expected one row after clear, got %d", len(store.rows))
	}
	if store.rows[0].Action != models.ActionClear {
		t.Errorf("surviving row action = %q, want clear", store.rows[0].Action)
	}
}

func TestListPagingDefaults(t *testing.T) {
	store := &memoryStore{rows: []models.ActivityLog{{Action: models.ActionCreate, Entity: "skill", EntityID: "s"}}}
	svc := NewActivityServiceWithStore(store)

	page, err := svc.List(0, -5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Page != 1 || page.PageSize != 50 {
		t.Errorf("defaults = page %d size %d, want page 1 size 50", page.Page, page.PageSize)
	}
	if page.TotalCount != 1 {
		t.Errorf("total = %d, want 1", page.TotalCount)
	}
}
