package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the journal in process memory.
const MemoryDSN = ":memory:"

const schema = `
	CREATE TABLE IF NOT EXISTS events (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		runId TEXT NOT NULL,
		kind TEXT NOT NULL,
		phase TEXT NOT NULL,
		at REAL NOT NULL,
		elapsedMs INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS events_run ON events(runId, seq);
`

// Store is the journal of a single run.
type Store struct {
	db    *sql.DB
	runID string
}

// Open opens the journal and creates its schema. An empty dsn means
// MemoryDSN.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}

	return &Store{db: db, runID: uuid.NewString()}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunID identifies the events written by this Store.
func (s *Store) RunID() string {
	return s.runID
}

// Record appends an event to the current run. ID and RunID are assigned here.
func (s *Store) Record(ctx context.Context, ev Event) (Event, error) {
	ev.ID = uuid.NewString()
	ev.RunID = s.runID
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, runId, kind, phase, at, elapsedMs)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ev.ID, ev.RunID, string(ev.Kind), ev.Phase, unixFromTime(ev.At), ev.Elapsed.Milliseconds())
	if err != nil {
		return Event{}, fmt.Errorf("insert event: %w", err)
	}
	return ev, nil
}

// Events returns the events of the current run in the order they were recorded.
func (s *Store) Events(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, runId, kind, phase, at, elapsedMs
		FROM events
		WHERE runId = ?
		ORDER BY seq ASC
	`, s.runID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var kind string
		var at float64
		var elapsedMs int64
		if err := rows.Scan(&ev.ID, &ev.RunID, &kind, &ev.Phase, &at, &elapsedMs); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Kind = EventKind(kind)
		ev.At = timeFromUnix(at)
		ev.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Summary counts completed work phases and skips of the current run.
// Focused time is the work time left behind by completions, skips, resets
// and the final quit.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'completed' AND phase = 'work' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN phase = 'work' AND kind IN ('completed', 'skipped', 'reset', 'quit') THEN elapsedMs ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'skipped' THEN 1 ELSE 0 END), 0)
		FROM events
		WHERE runId = ?
	`, s.runID)

	var sum Summary
	var focusedMs int64
	if err := row.Scan(&sum.Tomatoes, &focusedMs, &sum.Skipped); err != nil {
		return Summary{}, fmt.Errorf("scan summary: %w", err)
	}
	sum.Focused = time.Duration(focusedMs) * time.Millisecond
	return sum, nil
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
