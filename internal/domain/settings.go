package domain

import "fmt"

const (
	MinDailyGoal = 1
	MaxDailyGoal = 999
)

// Settings holds the single row of user preferences.
type Settings struct {
	ID        string
	DailyGoal int
}

func ValidateDailyGoal(n int) error {
	if n < MinDailyGoal || n > MaxDailyGoal {
		return fmtInvalid("daily goal must be between %d and %d, got %d", MinDailyGoal, MaxDailyGoal, n)
	}
	return nil
}

func fmtInvalid(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}
