// Package journal records export history in a local SQLite database.
// The journal lives in the CLI layer: the engine itself keeps no
// persisted state, so recording happens after export() returns.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/inkforge/inkforge/core/export"
)

const schema = `
CREATE TABLE IF NOT EXISTS exports (
	run_id      TEXT PRIMARY KEY,
	manuscript  TEXT NOT NULL,
	format      TEXT NOT NULL,
	path        TEXT NOT NULL,
	ok          INTEGER NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	reason      TEXT NOT NULL DEFAULT '',
	size_bytes  INTEGER NOT NULL DEFAULT 0,
	sha256      TEXT NOT NULL DEFAULT '',
	blake3      TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exports_created ON exports(created_at);
`

// Entry is one journal row.
type Entry struct {
	RunID      string
	Manuscript string
	Format     string
	Path       string
	OK         bool
	Category   string
	Reason     string
	SizeBytes  int64
	SHA256     string
	BLAKE3     string
	DurationMS int64
	CreatedAt  time.Time
}

// Journal is an open export history database.
type Journal struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the journal at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores the outcome of one export call.
func (j *Journal) Record(manuscriptTitle string, res export.Result) error {
	_, err := j.db.Exec(`
		INSERT INTO exports
			(run_id, manuscript, format, path, ok, category, reason,
			 size_bytes, sha256, blake3, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID,
		manuscriptTitle,
		res.Format,
		res.Artifact.Path,
		boolToInt(res.OK),
		string(res.Category),
		res.Reason,
		res.Artifact.Size,
		res.Artifact.SHA256,
		res.Artifact.BLAKE3,
		res.Duration.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.Query(`
		SELECT run_id, manuscript, format, path, ok, category, reason,
		       size_bytes, sha256, blake3, duration_ms, created_at
		FROM exports
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ok int
		var created string
		if err := rows.Scan(&e.RunID, &e.Manuscript, &e.Format, &e.Path, &ok,
			&e.Category, &e.Reason, &e.SizeBytes, &e.SHA256, &e.BLAKE3,
			&e.DurationMS, &created); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		e.OK = ok != 0
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
