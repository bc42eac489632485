// Package cache implements the process-wide content-hash cache spec.md §1
// names as a real collaborator but leaves unspecified: a content hash of a
// source file maps to the TypeErrors its last analysis produced, so a
// second run over an unchanged file can skip re-analysis entirely. Backed
// by modernc.org/sqlite, a pure-Go, cgo-free driver.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a handle to the on-disk cache database. Store is safe for
// concurrent use by multiple goroutines sharing the same *sql.DB pool.
type Store struct {
	db *sql.DB
}

// storedError mirrors diagnostics.TypeError in a JSON-friendly shape; the
// cache never imports internal/diagnostics's Location-as-token.Location
// pointer directly so that a stored entry remains a plain value type
// decoupled from the analyzer's live object graph.
type storedError struct {
	ReceiverType string `json:"receiver_type"`
	MethodName   string `json:"method_name"`
	File         string `json:"file,omitempty"`
	Line         int    `json:"line,omitempty"`
	Column       int    `json:"column,omitempty"`
}

// Open creates (if needed) and opens the cache database at path. Passing
// ":memory:" is useful for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS analysis_cache (
		content_hash TEXT PRIMARY KEY,
		errors_json  TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Hash returns the content hash Lookup/Store key on for the given source
// bytes.
func Hash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// StoredTypeError is the cache's plain-value shape for one recorded
// diagnostic, independent of the live diagnostics.TypeError's pointer
// fields.
type StoredTypeError struct {
	ReceiverType string
	MethodName   string
	File         string
	Line         int
	Column       int
}

// Lookup returns the cached errors for contentHash, or ok=false on a miss.
func (s *Store) Lookup(ctx context.Context, contentHash string) ([]StoredTypeError, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT errors_json FROM analysis_cache WHERE content_hash = ?`, contentHash).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: lookup %s: %w", contentHash, err)
	}

	var stored []storedError
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", contentHash, err)
	}
	out := make([]StoredTypeError, len(stored))
	for i, e := range stored {
		out[i] = StoredTypeError{
			ReceiverType: e.ReceiverType,
			MethodName:   e.MethodName,
			File:         e.File,
			Line:         e.Line,
			Column:       e.Column,
		}
	}
	return out, true, nil
}

// Put replaces the cached errors for contentHash.
func (s *Store) Put(ctx context.Context, contentHash string, errs []StoredTypeError) error {
	stored := make([]storedError, len(errs))
	for i, e := range errs {
		stored[i] = storedError{
			ReceiverType: e.ReceiverType,
			MethodName:   e.MethodName,
			File:         e.File,
			Line:         e.Line,
			Column:       e.Column,
		}
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("cache: encode entry for %s: %w", contentHash, err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO analysis_cache (content_hash, errors_json) VALUES (?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET errors_json = excluded.errors_json`, contentHash, raw)
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", contentHash, err)
	}
	return nil
}
