package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

// setupTestDB points the package-level connection at a fresh in-memory
// database and migrates the full schema. The returned teardown restores the
// previous connection.
func setupTestDB(t *testing.T) func() {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	previous := database.DB
	database.DB = db

	return func() {
		database.DB = previous
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// activityRows reads the audit rows matching entity and action
func activityRows(t *testing.T, entity, action string) []models.ActivityLog {
	t.Helper()
	var rows []models.ActivityLog
	err := database.DB.Where("entity = ? AND action = ?", entity, action).
		Order("created_at asc").Find(&rows).Error
	if err != nil {
		t.Fatalf("Failed to read activity rows: %v", err)
	}
	return rows
}
