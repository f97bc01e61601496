package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLevelButton_ActivateCallsOnClickOnce(t *testing.T) {
	calls := 0
	b := LevelButton{Level: 2, Color: "pink", Label: "Lv.2 (20まで)", OnClick: func() tea.Cmd {
		calls++
		return nil
	}}

	assert.Nil(t, b.Activate())
	assert.Equal(t, 1, calls)

	b.Activate()
	assert.Equal(t, 2, calls, "no debounce between activations")
}

func TestLevelButton_ActivateReturnsCallbackCmd(t *testing.T) {
	type marker struct{}
	b := LevelButton{Level: 1, OnClick: func() tea.Cmd {
		return func() tea.Msg { return marker{} }
	}}

	cmd := b.Activate()
	if assert.NotNil(t, cmd) {
		assert.IsType(t, marker{}, cmd())
	}
}

func TestLevelButton_NilOnClick(t *testing.T) {
	assert.Nil(t, LevelButton{Level: 3}.Activate())
}

func TestLevelButton_Render(t *testing.T) {
	b := LevelButton{Level: 3, Color: "blue", Label: "Lv.3 (すこしおおきなかず)"}

	plain := b.Render(40, false)
	focused := b.Render(40, true)

	assert.Contains(t, plain, "3")
	assert.Contains(t, plain, b.Label)
	assert.Contains(t, plain, "→")
	assert.NotContains(t, plain, "▸")
	assert.Contains(t, focused, "▸")
	assert.Equal(t, 40, lipgloss.Width(plain))
	assert.Equal(t, 40, lipgloss.Width(focused))
	assert.Equal(t, plain, b.Render(40, false))
}

func TestLevelButton_RenderNarrowKeepsOneSpace(t *testing.T) {
	b := LevelButton{Level: 1, Color: "pink", Label: "Lv.1 (10まで)"}

	out := b.Render(5, false)
	assert.Contains(t, out, b.Label+" →")
}
