package domain

import "time"

// PlaySession records that a game was started from the home screen.
type PlaySession struct {
	ID        string
	Mode      GameMode
	Level     Level
	StartedAt time.Time
}

// Completion is a report from the game engine that Count problems were
// finished on Day. Mode and Level are optional.
type Completion struct {
	ID        string
	Day       time.Time
	Count     int
	Mode      GameMode
	Level     Level
	CreatedAt time.Time
}

// Validate checks the fields that Record relies on.
func (c *Completion) Validate() error {
	if c.Count <= 0 {
		return fmtInvalid("count must be positive, got %d", c.Count)
	}
	if c.Mode != "" && !c.Mode.Valid() {
		return fmtInvalid("unknown game mode %q", c.Mode)
	}
	if c.Level != 0 && !c.Level.Valid() {
		return fmtInvalid("level must be 1, 2 or 3, got %d", c.Level)
	}
	return nil
}
