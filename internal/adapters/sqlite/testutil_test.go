// Package sqlite_test contains integration tests for the SQLite repository.
//
// Test setup loads the schema through db.GetSchemaSQL() so tests always run
// against the authoritative schema. Do not hardcode CREATE TABLE statements
// in test files; use setupTestDB() and the seed helpers.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tempo/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMission inserts a mission row directly and returns its ID.
// A zero endedAt seeds an open mission.
func seedMission(t *testing.T, testDB *sql.DB, name string, startedAt, endedAt time.Time) int64 {
	t.Helper()

	var end any
	if !endedAt.IsZero() {
		end = endedAt.UTC().Format(time.RFC3339)
	}
	result, err := testDB.Exec(
		"INSERT INTO missions (name, start_date, end_date) VALUES (?, ?, ?)",
		name, startedAt.UTC().Format(time.RFC3339), end,
	)
	if err != nil {
		t.Fatalf("failed to seed mission: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded mission id: %v", err)
	}
	return id
}
