package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteMedium stores keys in a single kv table. The schema is created
// idempotently on open; there is no versioned migration to run since
// schema evolution happens at the key level, not the table level.
type SQLiteMedium struct {
	path string
	db   *sql.DB
}

func OpenSQLite(path string) (*SQLiteMedium, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLiteMedium{path: path, db: db}, nil
}

func (m *SQLiteMedium) Get(key string) ([]byte, bool, error) {
	var value string
	err := m.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (m *SQLiteMedium) Set(key string, value []byte) error {
	_, err := m.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (m *SQLiteMedium) Delete(key string) error {
	if _, err := m.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}

func (m *SQLiteMedium) Path() string {
	return m.path
}

// DB exposes the underlying connection for diagnostics.
func (m *SQLiteMedium) DB() *sql.DB {
	return m.db
}
