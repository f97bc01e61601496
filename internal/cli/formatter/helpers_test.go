package formatter

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDateFrom(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Sep 30, 2026", HumanDateFrom(time.Date(2026, 9, 30, 8, 0, 0, 0, time.UTC), now))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Yesterday", HumanTimestampFrom(now.Add(-30*time.Hour), now))
}

func TestPadRight_UsesDisplayWidth(t *testing.T) {
	got := PadRight("たしざん", 10)
	assert.Equal(t, 10, lipgloss.Width(got))
	assert.Equal(t, "abc", PadRight("abc", 2))
}

func TestTokenColor_UnknownFallsBackToDim(t *testing.T) {
	assert.Equal(t, ColorPink, TokenColor("pink"))
	assert.Equal(t, ColorBlue, TokenColor("blue"))
	assert.Equal(t, ColorDim, TokenColor("chartreuse"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"MODE", "LV"}, [][]string{{"addition", "1"}, {"subtraction", "3"}})
	assert.Contains(t, out, "MODE")
	assert.Contains(t, out, "subtraction  3")
	assert.Contains(t, out, "addition     1")
}
