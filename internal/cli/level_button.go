package cli

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sansu-app/sansu/internal/cli/formatter"
)

// LevelButton is a stateless control for one (mode, level) pair. Whether it
// is focused is decided by the caller at render time.
type LevelButton struct {
	Level   int
	Color   string // palette token, see formatter.TokenColor
	Label   string
	OnClick func() tea.Cmd
}

// Activate invokes OnClick once and returns its command.
func (b LevelButton) Activate() tea.Cmd {
	if b.OnClick == nil {
		return nil
	}
	return b.OnClick()
}

// Render draws the button as one line of the given display width:
// a colored level chip, the label, and an arrow on the right.
func (b LevelButton) Render(width int, focused bool) string {
	chip := formatter.Badge(b.Color, strconv.Itoa(b.Level))

	cursor := "  "
	label := lipgloss.NewStyle().Foreground(formatter.ColorFg).Render(b.Label)
	arrow := formatter.Dim("→")
	if focused {
		cursor = lipgloss.NewStyle().Foreground(formatter.TokenColor(b.Color)).Render("▸ ")
		label = formatter.Bold(b.Label)
		arrow = formatter.Bold("→")
	}

	used := lipgloss.Width(cursor) + lipgloss.Width(chip) + 1 + lipgloss.Width(label) + lipgloss.Width(arrow)
	gap := width - used
	if gap < 1 {
		gap = 1
	}
	return cursor + chip + " " + label + strings.Repeat(" ", gap) + arrow
}
