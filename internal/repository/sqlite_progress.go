package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sansu-app/sansu/internal/db"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

// AddToDay increments the day's total, creating the row on first use.
func (r *SQLiteProgressRepo) AddToDay(ctx context.Context, day string, delta int) error {
	query := `INSERT INTO daily_progress (day, count, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET count = count + excluded.count, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, day, delta, nowUTC()); err != nil {
		return fmt.Errorf("adding to daily progress: %w", err)
	}
	return nil
}

// CountOn returns 0 for days with no row.
func (r *SQLiteProgressRepo) CountOn(ctx context.Context, day string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count FROM daily_progress WHERE day = ?`, day).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading daily progress: %w", err)
	}
	return n, nil
}

// CountsBetween returns totals for days in [from, to], both inclusive.
func (r *SQLiteProgressRepo) CountsBetween(ctx context.Context, from, to string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, count FROM daily_progress WHERE day >= ? AND day <= ? ORDER BY day`, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing daily progress: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("scanning daily progress row: %w", err)
		}
		counts[day] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily progress: %w", err)
	}
	return counts, nil
}
