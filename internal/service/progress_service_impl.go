package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/sansu-app/sansu/internal/db"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/sansu-app/sansu/internal/repository"
)

// snapshotLookbackDays is the minimum history loaded so streaks can run past
// the start of the displayed month.
const snapshotLookbackDays = 60

type progressService struct {
	progress    repository.ProgressRepo
	settings    repository.SettingsRepo
	uow         db.UnitOfWork
	defaultGoal int
	observer    UseCaseObserver
}

// NewProgressService wires the progress use cases. defaultGoal applies until
// a goal has been saved.
func NewProgressService(
	progress repository.ProgressRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	defaultGoal int,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		progress:    progress,
		settings:    settings,
		uow:         uow,
		defaultGoal: defaultGoal,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Snapshot(ctx context.Context, now time.Time) (*domain.ProgressSnapshot, error) {
	goal, err := s.Goal(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.StartOfDay(now)
	from := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
	if lookback := today.AddDate(0, 0, -snapshotLookbackDays); lookback.Before(from) {
		from = lookback
	}

	counts, err := s.countsForStreak(ctx, from, today, goal)
	if err != nil {
		return nil, fmt.Errorf("loading progress snapshot: %w", err)
	}

	return &domain.ProgressSnapshot{
		Today:      now,
		Progress:   counts,
		TodayCount: counts[domain.DayKey(today)],
		DailyGoal:  goal,
	}, nil
}

// countsForStreak loads [from, to] and keeps paging back one lookback window
// at a time while the oldest loaded day met the goal, so a streak is never
// cut off at the window edge.
func (s *progressService) countsForStreak(ctx context.Context, from, to time.Time, goal int) (map[string]int, error) {
	counts := make(map[string]int)
	for {
		page, err := s.progress.CountsBetween(ctx, domain.DayKey(from), domain.DayKey(to))
		if err != nil {
			return nil, err
		}
		maps.Copy(counts, page)
		if goal <= 0 || page[domain.DayKey(from)] < goal {
			return counts, nil
		}
		to = from.AddDate(0, 0, -1)
		from = to.AddDate(0, 0, -snapshotLookbackDays)
	}
}

// Record appends the completion and bumps the day's total in one transaction.
func (s *progressService) Record(ctx context.Context, c *domain.Completion) (err error) {
	if c == nil {
		return fmt.Errorf("%w: completion is required", domain.ErrInvalidInput)
	}
	defer observe(ctx, s.observer, "record-completion", time.Now().UTC(), map[string]any{
		"count": c.Count,
		"mode":  string(c.Mode),
		"level": int(c.Level),
	}, &err)

	if err = c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Day.IsZero() {
		c.Day = time.Now()
	}
	c.CreatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCompletionRepo(tx).Create(ctx, c); err != nil {
			return err
		}
		return repository.NewSQLiteProgressRepo(tx).AddToDay(ctx, domain.DayKey(c.Day), c.Count)
	})
}

func (s *progressService) Goal(ctx context.Context) (int, error) {
	settings, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return s.defaultGoal, nil
	}
	if err != nil {
		return 0, err
	}
	return settings.DailyGoal, nil
}

func (s *progressService) SetGoal(ctx context.Context, goal int) (err error) {
	defer observe(ctx, s.observer, "set-goal", time.Now().UTC(), map[string]any{"goal": goal}, &err)

	if err = domain.ValidateDailyGoal(goal); err != nil {
		return err
	}
	return s.settings.Upsert(ctx, &domain.Settings{ID: repository.DefaultSettingsID, DailyGoal: goal})
}
