// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/database"
)

// NewDB opens a migrated in-memory SQLite database that is closed with the test
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.New(database.Config{Driver: "sqlite", DSN: "file::memory:"})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
