// Package storage is the durable key-value layer: JSON blobs written
// wholesale under fixed keys in the local SQLite database.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Store reads and writes JSON blobs in the blobs table. Each Put fully
// overwrites the prior value for the key.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Put serializes v to JSON and upserts it under key.
func (s *Store) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal blob %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put blob %q: %w", key, err)
	}
	return nil
}

// Get unmarshals the blob stored under key into dst. It returns false
// with a nil error when the key is absent.
func (s *Store) Get(key string, dst any) (bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get blob %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return false, fmt.Errorf("unmarshal blob %q: %w", key, err)
	}
	return true, nil
}

// Delete removes the blob stored under key, if any.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}
