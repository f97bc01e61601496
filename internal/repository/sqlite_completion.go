package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sansu-app/sansu/internal/db"
	"github.com/sansu-app/sansu/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

func (r *SQLiteCompletionRepo) Create(ctx context.Context, c *domain.Completion) error {
	query := `INSERT INTO completions (id, day, count, mode, level, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		domain.DayKey(c.Day),
		c.Count,
		string(c.Mode),
		int(c.Level),
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByDay(ctx context.Context, day string) ([]*domain.Completion, error) {
	query := `SELECT id, day, count, mode, level, created_at
		FROM completions WHERE day = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Completion
	for rows.Next() {
		var c domain.Completion
		var dayStr, mode, createdAt string
		var level int
		if err := rows.Scan(&c.ID, &dayStr, &c.Count, &mode, &level, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning completion row: %w", err)
		}
		if c.Day, err = time.Parse(domain.DayLayout, dayStr); err != nil {
			return nil, fmt.Errorf("parsing day: %w", err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		c.Mode = domain.GameMode(mode)
		c.Level = domain.Level(level)
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return out, nil
}
