package db

import (
	"database/sql"
	"fmt"
)

// Statements are idempotent and run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		id         TEXT PRIMARY KEY,
		daily_goal INTEGER NOT NULL CHECK (daily_goal BETWEEN 1 AND 999),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS daily_progress (
		day        TEXT PRIMARY KEY,
		count      INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completions (
		id         TEXT PRIMARY KEY,
		day        TEXT NOT NULL,
		count      INTEGER NOT NULL CHECK (count > 0),
		mode       TEXT NOT NULL DEFAULT '' CHECK (mode IN ('', 'addition', 'subtraction')),
		level      INTEGER NOT NULL DEFAULT 0 CHECK (level BETWEEN 0 AND 3),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_day ON completions(day)`,

	`CREATE TABLE IF NOT EXISTS play_sessions (
		id         TEXT PRIMARY KEY,
		mode       TEXT NOT NULL CHECK (mode IN ('addition', 'subtraction')),
		level      INTEGER NOT NULL CHECK (level BETWEEN 1 AND 3),
		started_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_play_sessions_started ON play_sessions(started_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
