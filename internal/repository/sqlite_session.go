package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sansu-app/sansu/internal/db"
	"github.com/sansu-app/sansu/internal/domain"
)

// SQLitePlaySessionRepo implements PlaySessionRepo using a SQLite database.
type SQLitePlaySessionRepo struct {
	db db.DBTX
}

func NewSQLitePlaySessionRepo(conn db.DBTX) *SQLitePlaySessionRepo {
	return &SQLitePlaySessionRepo{db: conn}
}

func (r *SQLitePlaySessionRepo) Create(ctx context.Context, s *domain.PlaySession) error {
	query := `INSERT INTO play_sessions (id, mode, level, started_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, string(s.Mode), int(s.Level), formatTime(s.StartedAt))
	if err != nil {
		return fmt.Errorf("inserting play session: %w", err)
	}
	return nil
}

func (r *SQLitePlaySessionRepo) GetByID(ctx context.Context, id string) (*domain.PlaySession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, mode, level, started_at FROM play_sessions WHERE id = ?`, id)

	var mode, startedAt string
	var level int
	var s domain.PlaySession
	if err := row.Scan(&s.ID, &mode, &level, &startedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("play session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning play session: %w", err)
	}
	return populateSession(&s, mode, level, startedAt)
}

// ListSince returns sessions started at or after since, newest first.
// An empty mode matches every mode.
func (r *SQLitePlaySessionRepo) ListSince(ctx context.Context, since time.Time, mode domain.GameMode) ([]*domain.PlaySession, error) {
	query := `SELECT id, mode, level, started_at FROM play_sessions
		WHERE started_at >= ? AND (? = '' OR mode = ?)
		ORDER BY started_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, formatTime(since), string(mode), string(mode))
	if err != nil {
		return nil, fmt.Errorf("listing play sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.PlaySession
	for rows.Next() {
		var s domain.PlaySession
		var m, startedAt string
		var level int
		if err := rows.Scan(&s.ID, &m, &level, &startedAt); err != nil {
			return nil, fmt.Errorf("scanning play session row: %w", err)
		}
		session, err := populateSession(&s, m, level, startedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating play sessions: %w", err)
	}
	return sessions, nil
}

func populateSession(s *domain.PlaySession, mode string, level int, startedAt string) (*domain.PlaySession, error) {
	t, err := parseTime(startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	s.Mode = domain.GameMode(mode)
	s.Level = domain.Level(level)
	s.StartedAt = t
	return s, nil
}
