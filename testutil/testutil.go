// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Mukaram01/Name/cliparse"
	"github.com/Mukaram01/Name/db"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir
// with the full schema and default settings.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "contest.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// SQLite allows a single writer; one connection avoids busy errors
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedDefaultSettings(conn); err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4100,
		DatabasePath: ":memory:",
		AdminKeySalt: "test-admin-salt",
	}
}

// SetSetting overwrites one configuration value
func SetSetting(t *testing.T, conn *sql.DB, key, value string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO setting (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		t.Fatalf("Failed to set setting %s: %v", key, err)
	}
}

// SetPhase moves the contest to the given phase
func SetPhase(t *testing.T, conn *sql.DB, phase string) {
	t.Helper()
	SetSetting(t, conn, "phase", phase)
}

// AddRosterEntry inserts or replaces a roster entry
func AddRosterEntry(t *testing.T, conn *sql.DB, name, role, relation string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO roster (name, role, relation) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET role = excluded.role, relation = excluded.relation
	`, name, role, relation)
	if err != nil {
		t.Fatalf("Failed to add roster entry: %v", err)
	}
}

// AddTestSuggestion inserts a suggestion row and returns its ID
func AddTestSuggestion(t *testing.T, conn *sql.DB, name, gender, suggester, guess, relation, meaning string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO suggestion (id, name, gender, suggester, guess, relation, meaning, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, name, gender, suggester, guess, relation, meaning, now, now)
	if err != nil {
		t.Fatalf("Failed to create test suggestion: %v", err)
	}

	return id
}

// AddTestVote inserts a vote row and returns its ID
func AddTestVote(t *testing.T, conn *sql.DB, name, gender, voter string, score int) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, name, gender, voter, score, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, name, gender, voter, score, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
