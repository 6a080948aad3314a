// Package store provides a SQLite-backed key-value store for app state.
//
// Values are stored as JSON under stable string keys. Reads never fail the
// caller: a missing key, a corrupt row, or an unavailable database all
// resolve to the caller-supplied default.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Slot keys, stable across versions.
const (
	KeyBudgetLimit = "budgetwise_budget_limit"
	KeyExpenses    = "budgetwise_expenses"
)

// Store persists named JSON values. A nil *Store is valid and behaves as
// no storage at all: loads report nothing found, saves are dropped.
type Store struct {
	db *sql.DB
}

// Open opens or creates the state database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// LoadJSON reads the value stored under key into out, reporting whether a
// well-formed value was found. Corrupt values are logged and treated as
// absent so a bad row can never wedge the app.
func (s *Store) LoadJSON(key string, out any) bool {
	if s == nil {
		return false
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("state read failed, using default", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("corrupt state value, using default", "key", key, "error", err)
		return false
	}
	return true
}

// SaveJSON writes v under key, fully replacing any previous value
// (last-writer-wins, no merge). A nil store drops the write silently.
func (s *Store) SaveJSON(key string, v any) {
	if s == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("state encode failed, dropping write", "key", key, "error", err)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO slots (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(raw), now,
	); err != nil {
		slog.Warn("state write failed", "key", key, "error", err)
	}
}

// Load reads the JSON value under key as a T, returning def when nothing
// usable is stored. This never errors to the caller.
func Load[T any](s *Store, key string, def T) T {
	var v T
	if !s.LoadJSON(key, &v) {
		return def
	}
	return v
}

// Save writes v under key, fully overwriting prior content.
func Save[T any](s *Store, key string, v T) {
	s.SaveJSON(key, v)
}

// DefaultPath returns the XDG-compliant location of the state database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetwise", "state.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "budgetwise", "state.db")
}
