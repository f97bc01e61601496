package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameMode(t *testing.T) {
	cases := map[string]GameMode{
		"addition":    ModeAddition,
		"ADD":         ModeAddition,
		"+":           ModeAddition,
		"subtraction": ModeSubtraction,
		" sub ":       ModeSubtraction,
		"-":           ModeSubtraction,
	}
	for in, want := range cases {
		got, err := ParseGameMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseGameMode("multiplication")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"1", "2", "3"} {
		l, err := ParseLevel(in)
		require.NoError(t, err)
		assert.True(t, l.Valid())
	}
	for _, in := range []string{"0", "4", "x", ""} {
		_, err := ParseLevel(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestModeInfo_LevelLabels(t *testing.T) {
	assert.Equal(t, "Lv.2 (20まで)", ModeAddition.LevelLabel(Level2))
	assert.Equal(t, "Lv.1 (くりさがりなし)", ModeSubtraction.LevelLabel(Level1))
	assert.Equal(t, "ひきざん", ModeSubtraction.Info().Heading)
	assert.Equal(t, "+", ModeAddition.Info().Symbol)
	assert.Empty(t, ModeAddition.LevelLabel(Level(4)))
}

func TestCompletion_Validate(t *testing.T) {
	assert.NoError(t, (&Completion{Count: 3}).Validate())
	assert.NoError(t, (&Completion{Count: 3, Mode: ModeAddition, Level: Level3}).Validate())
	assert.ErrorIs(t, (&Completion{Count: 0}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Completion{Count: 1, Mode: "times"}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Completion{Count: 1, Level: 7}).Validate(), ErrInvalidInput)
}

func TestValidateDailyGoal(t *testing.T) {
	assert.NoError(t, ValidateDailyGoal(1))
	assert.NoError(t, ValidateDailyGoal(999))
	assert.ErrorIs(t, ValidateDailyGoal(0), ErrInvalidInput)
	assert.ErrorIs(t, ValidateDailyGoal(1000), ErrInvalidInput)
}
