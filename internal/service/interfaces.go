package service

import (
	"context"
	"time"

	"github.com/sansu-app/sansu/internal/domain"
)

// ProgressService owns daily progress: the snapshot shown by the stamp
// calendar, completion reports from the game engine, and the daily goal.
type ProgressService interface {
	Snapshot(ctx context.Context, now time.Time) (*domain.ProgressSnapshot, error)
	Record(ctx context.Context, c *domain.Completion) error
	Goal(ctx context.Context) (int, error)
	SetGoal(ctx context.Context, goal int) error
}

// SessionService records games started from the home screen.
type SessionService interface {
	Start(ctx context.Context, mode domain.GameMode, level domain.Level) (*domain.PlaySession, error)
	ListRecent(ctx context.Context, days int, mode domain.GameMode) ([]*domain.PlaySession, error)
}
