// Package history persists a record of completed transcription jobs in
// a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record describes one finished job, whatever its terminal state.
type Record struct {
	ID           int64
	JobID        string
	SourcePath   string
	MediaKind    string
	Format       string
	Destination  string
	State        string
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS job_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id TEXT NOT NULL,
    source_path TEXT NOT NULL,
    media_kind TEXT NOT NULL,
    format TEXT NOT NULL,
    destination TEXT NOT NULL DEFAULT '',
    state TEXT NOT NULL,
    error_message TEXT NOT NULL DEFAULT '',
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_job_history_finished_at ON job_history(finished_at);
`

// Open initializes or connects to the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a finished job and fills in its row ID.
func (s *Store) Record(ctx context.Context, rec *Record) error {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO job_history (
            job_id, source_path, media_kind, format, destination,
            state, error_message, started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.JobID,
		rec.SourcePath,
		rec.MediaKind,
		rec.Format,
		rec.Destination,
		rec.State,
		rec.ErrorMessage,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("history record id: %w", err)
	}
	rec.ID = id
	return nil
}

// List returns up to limit records, most recently finished first. A
// non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, job_id, source_path, media_kind, format, destination,
            state, error_message, started_at, finished_at
        FROM job_history ORDER BY finished_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var started, finished string
		if err := rows.Scan(
			&rec.ID, &rec.JobID, &rec.SourcePath, &rec.MediaKind, &rec.Format,
			&rec.Destination, &rec.State, &rec.ErrorMessage, &started, &finished,
		); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return records, nil
}

// Clear deletes all history records.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM job_history"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
