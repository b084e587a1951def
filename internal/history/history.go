// Package history records completed export runs in a local sqlite
// database so past exports can be inspected after the source CSVs are
// deleted.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded export run.
type Entry struct {
	ID         int64
	ExportedAt time.Time
	SourcePath string
	OutputPath string
	ListName   string
	Label      string
	CardCount  int
}

// OpError wraps a failed journal operation.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s export history: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Store wraps the sqlite connection holding the export journal.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &OpError{Op: "open", Err: err}
	}
	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	const schema = `CREATE TABLE IF NOT EXISTS exports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		exported_at DATETIME NOT NULL,
		source_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		list_name TEXT NOT NULL,
		label TEXT NOT NULL,
		card_count INTEGER NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return &OpError{Op: "migrate", Err: err}
	}
	return nil
}

// RecordExport appends one run to the journal.
func (s *Store) RecordExport(ctx context.Context, e Entry) error {
	exportedAt := e.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exports (exported_at, source_path, output_path, list_name, label, card_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		exportedAt, e.SourcePath, e.OutputPath, e.ListName, e.Label, e.CardCount)
	if err != nil {
		return &OpError{Op: "record", Err: err}
	}
	return nil
}

// RecentExports returns up to limit runs, newest first.
func (s *Store) RecentExports(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exported_at, source_path, output_path, list_name, label, card_count
		 FROM exports ORDER BY exported_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, &OpError{Op: "list", Err: err}
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ExportedAt, &e.SourcePath, &e.OutputPath, &e.ListName, &e.Label, &e.CardCount); err != nil {
			return nil, &OpError{Op: "list", Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &OpError{Op: "list", Err: err}
	}
	return entries, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
