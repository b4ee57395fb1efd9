// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/alkautsarf/elecTrust-v2/auth"
	"github.com/alkautsarf/elecTrust-v2/cliparse"
	"github.com/alkautsarf/elecTrust-v2/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// MaxOpenConns is pinned to 1 so the pool never opens a second connection
// onto a different empty in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           4217,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		VoterTokenSalt: "test-token-salt",
	}
}

// MintTestPrincipal registers a principal row and returns its ID and token
func MintTestPrincipal(t *testing.T, conn *sql.DB, cfg cliparse.Config, displayName string) (principal, token string) {
	t.Helper()

	principal, err := auth.GenerateID(12)
	if err != nil {
		t.Fatalf("Failed to generate principal ID: %v", err)
	}
	token = auth.MintPrincipalToken(principal, cfg.VoterTokenSalt)

	now := time.Now()
	_, err = conn.Exec(`
		INSERT INTO principal (id, display_name, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4)
	`, principal, displayName, now, now)
	if err != nil {
		t.Fatalf("Failed to insert test principal: %v", err)
	}

	return principal, token
}

// FakeClock is a manually advanced clock for window-boundary tests. Pass
// its Now method wherever a registry.Clock is expected.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
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
