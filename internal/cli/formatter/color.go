package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette, plus the two mode colors of the home screen.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPink   = lipgloss.Color("#f5a3c0")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorWhite  = lipgloss.Color("#fbf1c7")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePink   = lipgloss.NewStyle().Foreground(ColorPink)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TokenColor resolves a palette token such as "pink" or "blue".
// Unknown tokens fall back to the dim color.
func TokenColor(token string) lipgloss.Color {
	switch token {
	case "pink":
		return ColorPink
	case "blue":
		return ColorBlue
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "purple":
		return ColorPurple
	default:
		return ColorDim
	}
}

// Badge renders text as a filled chip in the token's color.
func Badge(token, text string) string {
	return lipgloss.NewStyle().
		Background(TokenColor(token)).
		Foreground(ColorWhite).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
