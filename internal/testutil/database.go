package testutil

import (
	"testing"

	"teamboard/internal/db"
)

// SetupTestDB creates a migrated in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(&db.Config{Driver: db.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
