package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 0, 0, time.UTC)
}

func TestProgressSnapshot_NilIsEmpty(t *testing.T) {
	var s *ProgressSnapshot
	assert.Equal(t, 0, s.CountOn(day(2026, 10, 18)))
	assert.False(t, s.GoalMetOn(day(2026, 10, 18)))
	assert.Equal(t, 0, s.Streak())
	assert.Zero(t, s.TodayRatio())
}

func TestProgressSnapshot_StreakIncludesToday(t *testing.T) {
	s := &ProgressSnapshot{
		Today:     day(2026, 10, 18),
		DailyGoal: 5,
		Progress: map[string]int{
			"2026-10-18": 5,
			"2026-10-17": 9,
			"2026-10-16": 5,
			"2026-10-15": 4,
			"2026-10-14": 10,
		},
	}
	assert.Equal(t, 3, s.Streak())
}

func TestProgressSnapshot_StreakEndsYesterdayWhenTodayOpen(t *testing.T) {
	s := &ProgressSnapshot{
		Today:     day(2026, 10, 18),
		DailyGoal: 5,
		Progress: map[string]int{
			"2026-10-18": 2,
			"2026-10-17": 5,
			"2026-10-16": 5,
		},
	}
	assert.Equal(t, 2, s.Streak())
}

func TestProgressSnapshot_StreakCrossesMonthBoundary(t *testing.T) {
	s := &ProgressSnapshot{
		Today:     day(2026, 11, 1),
		DailyGoal: 1,
		Progress: map[string]int{
			"2026-11-01": 1,
			"2026-10-31": 1,
			"2026-10-30": 3,
		},
	}
	assert.Equal(t, 3, s.Streak())
}

func TestProgressSnapshot_ZeroGoalNeverMet(t *testing.T) {
	s := &ProgressSnapshot{
		Today:    day(2026, 10, 18),
		Progress: map[string]int{"2026-10-18": 20},
	}
	assert.False(t, s.GoalMetOn(s.Today))
	assert.Equal(t, 0, s.Streak())
}

func TestProgressSnapshot_TodayRatioClamped(t *testing.T) {
	s := &ProgressSnapshot{TodayCount: 3, DailyGoal: 10}
	assert.InDelta(t, 0.3, s.TodayRatio(), 1e-9)

	s.TodayCount = 25
	assert.Equal(t, 1.0, s.TodayRatio())
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(day(2026, 10, 18))
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2026-10-18", DayKey(got))
}
