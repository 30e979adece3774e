// Package journal stores gadget events in sqlite.
//
// The journal is write-mostly history: gadget state is never restored
// from it on startup.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gadget_tui/internal/timelog"

	_ "modernc.org/sqlite"
)

// DefaultLimit bounds Recent when no limit is given.
const DefaultLimit = 50

var errPathRequired = errors.New("journal path must be provided")

type Repository struct {
	db *sql.DB
}

func Open(path string) (*Repository, error) {
	if path == "" {
		return nil, errPathRequired
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal: %w", err)
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		gadget TEXT NOT NULL,
		kind TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		occurred_at TEXT NOT NULL
	)
	`
	_, err := r.db.Exec(query)
	return err
}

// Record inserts e and sets its ID.
func (r *Repository) Record(ctx context.Context, e *timelog.Entry) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO events (gadget, kind, detail, occurred_at) VALUES (?, ?, ?, ?)",
		string(e.Gadget),
		string(e.Kind),
		e.Detail,
		e.At.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("event id: %w", err)
	}
	e.ID = id

	return nil
}

// Recent returns up to limit entries, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]timelog.Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, gadget, kind, detail, occurred_at FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var entries []timelog.Entry
	for rows.Next() {
		var (
			e          timelog.Entry
			gadget     string
			kind       string
			occurredAt string
		)
		if err := rows.Scan(&e.ID, &gadget, &kind, &e.Detail, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Gadget = timelog.Gadget(gadget)
		e.Kind = timelog.Kind(kind)
		e.At, _ = time.Parse(time.RFC3339Nano, occurredAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
