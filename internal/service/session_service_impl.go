package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/sansu-app/sansu/internal/repository"
)

type sessionService struct {
	sessions repository.PlaySessionRepo
	observer UseCaseObserver
}

func NewSessionService(sessions repository.PlaySessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *sessionService) Start(ctx context.Context, mode domain.GameMode, level domain.Level) (session *domain.PlaySession, err error) {
	defer observe(ctx, s.observer, "start-game", time.Now().UTC(), map[string]any{
		"mode":  string(mode),
		"level": int(level),
	}, &err)

	if !mode.Valid() {
		return nil, fmt.Errorf("unknown game mode %q: %w", mode, domain.ErrInvalidInput)
	}
	if !level.Valid() {
		return nil, fmt.Errorf("level must be 1, 2 or 3, got %d: %w", level, domain.ErrInvalidInput)
	}

	session = &domain.PlaySession{
		ID:        uuid.New().String(),
		Mode:      mode,
		Level:     level,
		StartedAt: time.Now().UTC(),
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ListRecent(ctx context.Context, days int, mode domain.GameMode) ([]*domain.PlaySession, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d: %w", days, domain.ErrInvalidInput)
	}
	since := domain.StartOfDay(time.Now()).AddDate(0, 0, -(days - 1))
	return s.sessions.ListSince(ctx, since, mode)
}
