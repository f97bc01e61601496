package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sansu-app/sansu/internal/db"
	"github.com/sansu-app/sansu/internal/domain"
)

// DefaultSettingsID is the id of the only settings row.
const DefaultSettingsID = "default"

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, daily_goal FROM settings WHERE id = ?`, DefaultSettingsID)

	var s domain.Settings
	if err := row.Scan(&s.ID, &s.DailyGoal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	if s.ID == "" {
		s.ID = DefaultSettingsID
	}
	query := `INSERT INTO settings (id, daily_goal, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET daily_goal = excluded.daily_goal, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.DailyGoal, nowUTC()); err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
