package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/sansu-app/sansu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func countFor(t *testing.T, database *sql.DB, day string) (int, bool) {
	t.Helper()
	var n int
	err := database.QueryRow(`SELECT count FROM daily_progress WHERE day = ?`, day).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false
	}
	require.NoError(t, err)
	return n, true
}

const insertDay = `INSERT INTO daily_progress (day, count, updated_at) VALUES (?, ?, '2026-10-18T00:00:00Z')`

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertDay, "2026-10-18", 4)
		return err
	})
	require.NoError(t, err)

	n, found := countFor(t, database, "2026-10-18")
	assert.True(t, found)
	assert.Equal(t, 4, n)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertDay, "2026-10-17", 2); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := countFor(t, database, "2026-10-17")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertDay, "2026-10-16", 1)
			panic("boom")
		})
	})

	_, found := countFor(t, database, "2026-10-16")
	assert.False(t, found, "row should not exist after panic")
}

func TestWithinTx_ReturnsCallbackErrorUnwrapped(t *testing.T) {
	_, uow := openUoW(t)
	sentinel := errors.New("quota reached")

	err := uow.WithinTx(context.Background(), func(context.Context, db.DBTX) error {
		return sentinel
	})
	assert.Same(t, sentinel, err)
}
