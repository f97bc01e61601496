package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type GameMode string

const (
	ModeAddition    GameMode = "addition"
	ModeSubtraction GameMode = "subtraction"
)

// GameModes lists the modes in the order the home screen shows them.
var GameModes = []GameMode{ModeAddition, ModeSubtraction}

func (m GameMode) Valid() bool {
	return m == ModeAddition || m == ModeSubtraction
}

// ParseGameMode accepts the canonical names plus the "+"/"-" shorthands.
func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "addition", "add", "+":
		return ModeAddition, nil
	case "subtraction", "sub", "-":
		return ModeSubtraction, nil
	}
	return "", fmt.Errorf("unknown game mode %q: %w", s, ErrInvalidInput)
}

// Level is an ordinal difficulty tier. What a tier means is up to the game engine.
type Level int

const (
	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
)

// Levels lists the tiers top to bottom as rendered in each panel.
var Levels = []Level{Level1, Level2, Level3}

func (l Level) Valid() bool {
	return l >= Level1 && l <= Level3
}

func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Level(n).Valid() {
		return 0, fmt.Errorf("level must be 1, 2 or 3, got %q: %w", s, ErrInvalidInput)
	}
	return Level(n), nil
}
