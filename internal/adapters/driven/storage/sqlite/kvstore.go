// Package sqlite provides the persistent key-value store backing the
// domain store. Each logical key maps to one JSON document row, the Go
// stand-in for the browser-local storage the original design assumed.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure KVStore implements the interface.
var _ driven.KeyValueStore = (*KVStore)(nil)

// KVStore is a SQLite-backed implementation of driven.KeyValueStore.
// Per the adapter contract, storage and serialisation failures never
// escape as errors: writes report false, reads report absent, and the
// failure is logged.
type KVStore struct {
	db   *sql.DB
	path string
}

// NewKVStore creates a store at dataDir. If dataDir is empty, defaults
// to ~/.plateful/data.
func NewKVStore(dataDir string) (*KVStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".plateful", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "plateful.db")

	// WAL keeps reads cheap; busy_timeout covers the odd concurrent open.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &KVStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *KVStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *KVStore) Path() string {
	return s.path
}

// Save serialises value as a JSON document under key.
func (s *KVStore) Save(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("save %q: marshal: %v", key, err)
		return false
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UnixMilli(),
	)
	if err != nil {
		logger.Warn("save %q: %v", key, err)
		return false
	}
	return true
}

// Load deserialises the document at key into dest. Returns false when
// the key is absent or the document cannot be read.
func (s *KVStore) Load(key string, dest any) bool {
	var data string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		logger.Warn("load %q: %v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		logger.Warn("load %q: unmarshal: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the document at key. Removing an absent key succeeds.
func (s *KVStore) Remove(key string) bool {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		logger.Warn("remove %q: %v", key, err)
		return false
	}
	return true
}

// ClearAll removes the documents for the given keys.
func (s *KVStore) ClearAll(keys ...string) {
	for _, key := range keys {
		s.Remove(key)
	}
}
