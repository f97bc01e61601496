package repository

import (
	"context"
	"time"

	"github.com/sansu-app/sansu/internal/domain"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

// ProgressRepo stores per-day completed-problem totals keyed by domain.DayKey.
type ProgressRepo interface {
	AddToDay(ctx context.Context, day string, delta int) error
	CountOn(ctx context.Context, day string) (int, error)
	CountsBetween(ctx context.Context, from, to string) (map[string]int, error)
}

type CompletionRepo interface {
	Create(ctx context.Context, c *domain.Completion) error
	ListByDay(ctx context.Context, day string) ([]*domain.Completion, error)
}

type PlaySessionRepo interface {
	Create(ctx context.Context, s *domain.PlaySession) error
	GetByID(ctx context.Context, id string) (*domain.PlaySession, error)
	ListSince(ctx context.Context, since time.Time, mode domain.GameMode) ([]*domain.PlaySession, error)
}
