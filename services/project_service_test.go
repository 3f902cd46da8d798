package services

import (
	"encoding/json"
	"testing"

	"portfolio-backend/apperr"
	"portfolio-backend/dto"
	"portfolio-backend/repositories"
)

func newProjectServiceForTest() *ProjectService {
	return NewProjectServiceWith(repositories.NewProjectRepository(), NewActivityService())
}

func TestProjectCreateDefaults(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()

	first, err := svc.Create(dto.CreateProjectRequest{Slug: "one", Title: "One"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !first.Visible {
		t.Error("a new project should default to visible")
	}
	if first.SortOrder != 1 {
		t.Errorf("first project sort order = %d, want 1", first.SortOrder)
	}
	if first.PublishedAt != nil {
		t.Error("an unpublished project should have no publish timestamp")
	}

	stored, err := svc.Get(first.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.Technologies == nil || len(stored.Technologies) != 0 {
		t.Errorf("technologies should load as an empty list, got %v", stored.Technologies)
	}

	second, err := svc.Create(dto.CreateProjectRequest{Slug: "two", Title: "Two"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if second.SortOrder != 2 {
		t.Errorf("second project sort order = %d, want 2", second.SortOrder)
	}
}

func TestProjectCreatePublishedStampsTime(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()
	created, err := svc.Create(dto.CreateProjectRequest{Slug: "live", Title: "Live", Published: true}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.PublishedAt == nil {
		t.Error("publishing at create time should stamp publishedAt")
	}
}

func TestProjectCreateSlugConflict(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()
	original, err := svc.Create(dto.CreateProjectRequest{Slug: "taken", Title: "Original"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Create(dto.CreateProjectRequest{Slug: "taken", Title: "Impostor"}, nil)
	if !apperr.IsConflict(err) {
		t.Fatalf("duplicate slug returned %v, want conflict", err)
	}

	// The existing record is untouched by the rejected create
	stored, err := svc.Get(original.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.Title != "Original" {
		t.Errorf("existing project title = %q, want %q", stored.Title, "Original")
	}
}

func TestProjectCreateRejectsTooManyImages(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()
	images := make([]dto.ProjectImageInput, 4)
	for i := range images {
		images[i] = dto.ProjectImageInput{URL: "https://cdn.example.com/img.png"}
	}

	_, err := svc.Create(dto.CreateProjectRequest{Slug: "busy", Title: "Busy", Images: images}, nil)
	if !apperr.IsValidation(err) {
		t.Errorf("create with 4 images returned %v, want validation error", err)
	}
}

func TestProjectMutationsWriteAuditRows(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()
	created, err := svc.Create(dto.CreateProjectRequest{Slug: "tracked", Title: "Tracked"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newTitle := "Renamed"
	if _, err := svc.Update(created.ID, dto.UpdateProjectRequest{Title: &newTitle}, nil); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if err := svc.Delete(created.ID, nil); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	for _, action := range []string{"create", "update", "delete"} {
		rows := activityRows(t, "project", action)
		if len(rows) != 1 {
			t.Errorf("expected exactly one %s audit row, got %d", action, len(rows))
			continue
		}
		if rows[0].EntityID != created.ID {
			t.Errorf("%s audit row references %q, want %q", action, rows[0].EntityID, created.ID)
		}
	}
}

func TestProjectUpdatePublishStampsOnce(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()
	created, err := svc.Create(dto.CreateProjectRequest{Slug: "draft", Title: "Draft"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	published := true
	updated, err := svc.Update(created.ID, dto.UpdateProjectRequest{Published: &published}, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Fatal("publishing should stamp publishedAt")
	}
	stamp := *updated.PublishedAt

	// Publishing again keeps the original timestamp
	again, err := svc.Update(created.ID, dto.UpdateProjectRequest{Published: &published}, nil)
	if err != nil {
		t.Fatalf("second Update returned error: %v", err)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(stamp) {
		t.Errorf("republishing moved publishedAt from %v to %v", stamp, again.PublishedAt)
	}
}

func TestProjectBulkDelete(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()

	if _, err := svc.BulkDelete(nil, nil); !apperr.IsValidation(err) {
		t.Errorf("bulk delete with no ids returned %v, want validation error", err)
	}

	a, _ := svc.Create(dto.CreateProjectRequest{Slug: "a", Title: "A"}, nil)
	b, _ := svc.Create(dto.CreateProjectRequest{Slug: "b", Title: "B"}, nil)

	count, err := svc.BulkDelete([]string{a.ID, b.ID}, nil)
	if err != nil {
		t.Fatalf("BulkDelete returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("BulkDelete removed %d projects, want 2", count)
	}

	rows := activityRows(t, "project", "delete")
	if len(rows) != 1 {
		t.Fatalf("expected one aggregated audit row, got %d", len(rows))
	}
	if rows[0].EntityID != "bulk" {
		t.Errorf("bulk audit row entity id = %q, want bulk", rows[0].EntityID)
	}

	var metadata struct {
		IDs   []string `json:"ids"`
		Names []string `json:"names"`
	}
	if err := json.Unmarshal([]byte(rows[0].Metadata), &metadata); err != nil {
		t.Fatalf("bulk audit metadata is not valid JSON: %v", err)
	}
	if len(metadata.IDs) != 2 || len(metadata.Names) != 2 {
		t.Errorf("bulk audit metadata = %+v, want 2 ids and 2 names", metadata)
	}
}

func TestProjectBulkDeleteMetadataAlignment(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	svc := newProjectServiceForTest()

	a, _ := svc.Create(dto.CreateProjectRequest{Slug: "a", Title: "A"}, nil)
	b, _ := svc.Create(dto.CreateProjectRequest{Slug: "b", Title: "B"}, nil)

	// A nonexistent id in the request must not show up in the audit metadata
	count, err := svc.BulkDelete([]string{a.ID, "no-such-id", b.ID}, nil)
	if err != nil {
		t.Fatalf("BulkDelete returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("BulkDelete removed %d projects, want 2", count)
	}

	rows := activityRows(t, "project", "delete")
	if len(rows) != 1 {
		t.Fatalf("expected one aggregated audit row, got %d", len(rows))
	}

	var metadata struct {
		IDs   []string `json:"ids"`
		Names []string `json:"names"`
	}
	if err := json.Unmarshal([]byte(rows[0].Metadata), &metadata); err != nil {
		t.Fatalf("bulk audit metadata is not valid JSON: %v", err)
	}
	if len(metadata.IDs) != len(metadata.Names) {
		t.Fatalf("metadata ids and names differ in length: %+v", metadata)
	}
	wantNames := map[string]string{a.ID: "A", b.ID: "B"}
	for i, id := range metadata.IDs {
		if id == "no-such-id" {
			t.Errorf("metadata ids include a nonexistent id: %v", metadata.IDs)
		}
		if want, ok := wantNames[id]; ok && metadata.Names[i] != want {
			t.Errorf("metadata names[%d] = %q for id %s, want %q", i, metadata.Names[i], id, want)
		}
	}
	if len(metadata.IDs) != 2 {
		t.Errorf("metadata ids = %v, want the 2 deleted projects", metadata.IDs)
	}
}
