// Package audit persists a record of tool invocations to SQLite. Records
// carry only operational metadata (tool name, outcome, latency) — never
// request payloads, response bodies, or tokens.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration
)

const busyTimeoutMillis = 5000

// schemaStatements are executed in order to create the database schema.
// All use IF NOT EXISTS for idempotent re-application.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS invocations (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		tool        TEXT    NOT NULL,
		outcome     TEXT    NOT NULL,
		error_kind  TEXT    NOT NULL DEFAULT '',
		retryable   INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations(tool, created_at)`,
}

// Record is one audited tool invocation.
type Record struct {
	ID        int64
	Tool      string
	Outcome   string // "ok" or "error"
	ErrorKind string // classification kind, empty on success
	Retryable bool
	Duration  time.Duration
	CreatedAt string
}

// Store is a SQLite-backed invocation log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the audit database at path. The database
// uses WAL mode, a 5 s busy timeout, and a single connection (SQLite
// serialises writes). The caller must Close the store when done.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("audit: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit: enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMillis)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit: set busy_timeout: %w", err)
	}

	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("audit: schema statement %d: %w", i, err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append writes one invocation record.
func (s *Store) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (tool, outcome, error_kind, retryable, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Tool, rec.Outcome, rec.ErrorKind, boolInt(rec.Retryable), rec.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("audit: append: %w", err)
	}
	return nil
}

// Recent returns up to limit most-recent records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool, outcome, error_kind, retryable, duration_ms, created_at
		 FROM invocations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: query recent: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var retryable int
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.Tool, &rec.Outcome, &rec.ErrorKind, &retryable, &durationMS, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("audit: scan record: %w", err)
		}
		rec.Retryable = retryable != 0
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: iterate records: %w", err)
	}
	return records, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
