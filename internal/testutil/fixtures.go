package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/sansu-app/sansu/internal/domain"
)

// Day returns noon UTC on the given date, far from any midnight edge.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

type CompletionOption func(*domain.Completion)

func WithGame(mode domain.GameMode, level domain.Level) CompletionOption {
	return func(c *domain.Completion) {
		c.Mode = mode
		c.Level = level
	}
}

func NewTestCompletion(day time.Time, count int, opts ...CompletionOption) *domain.Completion {
	c := &domain.Completion{
		ID:        uuid.New().String(),
		Day:       day,
		Count:     count,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestPlaySession(mode domain.GameMode, level domain.Level, startedAt time.Time) *domain.PlaySession {
	return &domain.PlaySession{
		ID:        uuid.New().String(),
		Mode:      mode,
		Level:     level,
		StartedAt: startedAt,
	}
}

// NewTestSnapshot builds a snapshot for today with the given per-day counts.
func NewTestSnapshot(today time.Time, goal int, counts map[string]int) *domain.ProgressSnapshot {
	if counts == nil {
		counts = map[string]int{}
	}
	return &domain.ProgressSnapshot{
		Today:      today,
		Progress:   counts,
		TodayCount: counts[domain.DayKey(today)],
		DailyGoal:  goal,
	}
}
