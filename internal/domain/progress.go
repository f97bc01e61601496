package domain

import "time"

// DayLayout is the key format for per-day progress counts.
const DayLayout = "2006-01-02"

// DayKey formats t as a progress map key in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ProgressSnapshot is the read-only view of daily progress handed to the
// stamp calendar. Progress maps DayKey to the number of problems finished.
type ProgressSnapshot struct {
	Today      time.Time
	Progress   map[string]int
	TodayCount int
	DailyGoal  int
}

// CountOn returns the recorded count for the given day. Safe on nil.
func (s *ProgressSnapshot) CountOn(day time.Time) int {
	if s == nil {
		return 0
	}
	return s.Progress[DayKey(day)]
}

// GoalMetOn reports whether the daily goal was reached on day.
func (s *ProgressSnapshot) GoalMetOn(day time.Time) bool {
	if s == nil || s.DailyGoal <= 0 {
		return false
	}
	return s.CountOn(day) >= s.DailyGoal
}

// Streak counts consecutive goal-met days ending today, or ending yesterday
// when today's goal is still open.
func (s *ProgressSnapshot) Streak() int {
	if s == nil {
		return 0
	}
	day := StartOfDay(s.Today)
	if !s.GoalMetOn(day) {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for s.GoalMetOn(day) {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// TodayRatio is TodayCount over DailyGoal, clamped to [0, 1].
func (s *ProgressSnapshot) TodayRatio() float64 {
	if s == nil || s.DailyGoal <= 0 {
		return 0
	}
	r := float64(s.TodayCount) / float64(s.DailyGoal)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}
