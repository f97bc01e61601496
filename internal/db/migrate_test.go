package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"settings", "daily_progress", "completions", "play_sessions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_RejectsUnknownMode(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO play_sessions (id, mode, level, started_at) VALUES ('x', 'division', 1, '2026-10-18T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_RejectsOutOfRangeGoal(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO settings (id, daily_goal, updated_at) VALUES ('default', 0, '2026-10-18T00:00:00Z')`)
	assert.Error(t, err)
}
