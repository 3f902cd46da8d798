package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

// listColumns maps each table to the columns stored as JSON string arrays.
var listColumns = map[string][]string{
	"projects":   {"technologies", "tags"},
	"educations": {"achievements"},
	"services":   {"features"},
}

func main() {
	log.Println("Starting data repair...")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dryRun := os.Getenv("DRY_RUN") == "true"
	if dryRun {
		log.Println("Running in dry-run mode, nothing will be written")
	}

	repaired, normalized := 0, 0
	for table, columns := range listColumns {
		for _, column := range columns {
			r, n, err := repairColumn(db, table, column, dryRun)
			if err != nil {
				log.Fatalf("Failed to repair %s.%s: %v", table, column, err)
			}
			repaired += r
			normalized += n
		}
	}

	if err := auditSkillCategories(db); err != nil {
		log.Fatalf("Failed to audit skill categories: %v", err)
	}

	log.Printf("Data repair completed: %d broken values repaired, %d empty cells normalized to []", repaired, normalized)
}

type rawRow struct {
	ID    string
	Value *string
}

type cellState int

const (
	cellValid cellState = iota
	cellEmpty
	cellBroken
)

// repairColumn rewrites values that do not decode as a JSON string array.
// Comma-joined legacy text is split into elements and counted as repaired.
// NULL and blank cells already read back as an empty list; rewriting them
// to [] is cosmetic, so they are counted separately as normalized.
func repairColumn(db *gorm.DB, table, column string, dryRun bool) (int, int, error) {
	var rows []rawRow
	err := db.Table(table).
		Select("id, " + column + " AS value").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	repaired, normalized := 0, 0
	for _, row := range rows {
		state, fixed := classifyValue(row.Value)
		switch state {
		case cellValid:
			continue
		case cellEmpty:
			log.Printf("%s.%s id=%s: normalizing empty cell to []", table, column, row.ID)
			normalized++
		case cellBroken:
			log.Printf("%s.%s id=%s: repairing %q -> %s", table, column, row.ID, deref(row.Value), fixed)
			repaired++
		}
		if !dryRun {
			err := db.Table(table).
				Where("id = ?", row.ID).
				Update(column, fixed).Error
			if err != nil {
				return repaired, normalized, err
			}
		}
	}
	return repaired, normalized, nil
}

// classifyValue decides whether a stored value is already a JSON string
// array, a NULL/blank cell, or broken legacy text, and returns the canonical
// encoding for anything that needs rewriting.
func classifyValue(raw *string) (cellState, string) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return cellEmpty, "[]"
	}

	var items []string
	if err := json.Unmarshal([]byte(*raw), &items); err == nil {
		return cellValid, ""
	}

	items = []string{}
	for _, part := range strings.Split(*raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return cellBroken, "[]"
	}
	return cellBroken, string(encoded)
}

// auditSkillCategories reports rows created before category validation was
// enforced. These are not rewritten automatically, a human has to pick the
// right category.
func auditSkillCategories(db *gorm.DB) error {
	var skills []models.Skill
	if err := db.Find(&skills).Error; err != nil {
		return err
	}
	for _, skill := range skills {
		if !models.IsValidSkillCategory(skill.Category) {
			log.Printf("skill id=%s %q has unknown category %q", skill.ID, skill.Name, skill.Category)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
