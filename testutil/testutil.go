// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/electchain/server/auth"
	"github.com/electchain/server/cliparse"
	"github.com/electchain/server/db"
	"github.com/electchain/server/models"
)

var dbSeq atomic.Int64

// SetupTestDB opens a fresh in-memory database with the full schema.
// Each call gets its own database; cache=shared keeps it alive across
// the pool's connections, and a single connection avoids sqlite's
// write-lock contention under concurrent tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("testdb%d", dbSeq.Add(1))
	conn, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             4000,
		DatabaseURL:      ":memory:",
		DatabaseType:     "sqlite",
		AdminKeySalt:     "test-admin-salt",
		SessionTokenSalt: "test-session-salt",
		AdminEmail:       "admin@electchain.edu",
		AdminPassword:    "test-admin-password",
	}
}

// CreateTestVoter inserts a voter with a known password and returns its ID
func CreateTestVoter(t *testing.T, conn *sql.DB, email, password string) string {
	t.Helper()

	hash, err := auth.HashCredential(password)
	if err != nil {
		t.Fatalf("Failed to hash credential: %v", err)
	}

	voterID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO voter (id, full_name, student_id, email, college, department, year, phone, credential_hash, created_at)
		VALUES ($1, 'Test Voter', 'S-1001', $2, 'Engineering', 'CS', '3', '555-0100', $3, $4)
	`, voterID, email, hash, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return voterID
}

// CreateTestCandidate inserts a candidate in the given status and
// returns its ID. status should be "pending", "approved", or "rejected".
func CreateTestCandidate(t *testing.T, conn *sql.DB, name, position, status string) string {
	t.Helper()

	hash, err := auth.HashCredential("candidate-password")
	if err != nil {
		t.Fatalf("Failed to hash credential: %v", err)
	}

	candidateID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO candidate (id, name, position, manifesto, email, credential_hash, status, created_at)
		VALUES ($1, $2, $3, 'A test manifesto', $4, $5, $6, $7)
	`, candidateID, name, position, candidateID+"@test.edu", hash, status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// OpenElection marks the election active with a voting window spanning
// the current moment.
func OpenElection(t *testing.T, conn *sql.DB) {
	t.Helper()

	start := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	_, err := conn.Exec(`
		UPDATE election SET status = $1, window_start = $2, window_end = $3 WHERE id = 1
	`, models.ElectionActive, start, end)
	if err != nil {
		t.Fatalf("Failed to open election: %v", err)
	}
}

// SetElectionWindow sets the voting window without touching the status
func SetElectionWindow(t *testing.T, conn *sql.DB, start, end time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE election SET window_start = $1, window_end = $2 WHERE id = 1
	`, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to set election window: %v", err)
	}
}

// SetResultsVisible flips the results gate directly
func SetResultsVisible(t *testing.T, conn *sql.DB, visible bool) {
	t.Helper()

	_, err := conn.Exec(`UPDATE election SET results_visible = $1 WHERE id = 1`, visible)
	if err != nil {
		t.Fatalf("Failed to set results visibility: %v", err)
	}
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
