// Package store implements the SQLite-backed persistence layer for the
// companion: tasks, hydration/mood/sleep logs, and goals.
//
// The store is the only component that mutates state. The analytics
// package consumes read-only snapshots from it and never writes back.
// Mutations are single SQL statements or transactions, so concurrent
// tool invocations serialize at the database layer.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Config holds store configuration.
type Config struct {
	// DataDir is where companion.db lives. Created if missing.
	DataDir string
}

// DefaultConfig returns the default store configuration.
// PULSE_HOME overrides the data directory; otherwise ~/.pulse is used.
func DefaultConfig() Config {
	if dir := os.Getenv("PULSE_HOME"); dir != "" {
		return Config{DataDir: dir}
	}
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".pulse")}
}

// Store owns the companion database.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates a Store with the given configuration. It creates the data
// directory if needed, opens SQLite with WAL mode, and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "companion.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// SQLite performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("store: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			title          TEXT    NOT NULL,
			category       TEXT    NOT NULL DEFAULT 'Study',
			priority       TEXT    NOT NULL DEFAULT 'Medium',
			duration_hours REAL    NOT NULL DEFAULT 0,
			created_at     TEXT    NOT NULL,
			due_date       TEXT    NOT NULL DEFAULT '',
			status         TEXT    NOT NULL DEFAULT 'pending',
			points         INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_status   ON tasks(status);
		CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category);

		CREATE TABLE IF NOT EXISTS water_logs (
			day    TEXT PRIMARY KEY,
			liters REAL NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS mood_logs (
			id         TEXT PRIMARY KEY,
			day        TEXT NOT NULL,
			score      REAL NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_mood_day ON mood_logs(day);

		CREATE TABLE IF NOT EXISTS sleep_logs (
			id         TEXT PRIMARY KEY,
			day        TEXT NOT NULL,
			hours      REAL NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sleep_day ON sleep_logs(day);

		CREATE TABLE IF NOT EXISTS goals (
			title        TEXT PRIMARY KEY,
			category     TEXT NOT NULL,
			target_hours REAL NOT NULL DEFAULT 0,
			created_at   TEXT NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Reset clears every collection and restarts task ID assignment at 1.
// Runs in a single transaction so a reset is all-or-nothing.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: reset: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM tasks`,
		`DELETE FROM water_logs`,
		`DELETE FROM mood_logs`,
		`DELETE FROM sleep_logs`,
		`DELETE FROM goals`,
		`DELETE FROM sqlite_sequence WHERE name = 'tasks'`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: reset: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: reset: commit: %w", err)
	}
	return nil
}
