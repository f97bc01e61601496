package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/sansu-app/sansu/internal/domain"
)

// sansuHuhTheme returns a huh theme drawn from the formatter palette.
func sansuHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorPink).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorWhite).Background(formatter.ColorPink).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateGoal accepts a whole number within the daily goal range.
func validateGoal(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if domain.ValidateDailyGoal(n) != nil {
		return fmt.Errorf("enter a number from %d to %d", domain.MinDailyGoal, domain.MaxDailyGoal)
	}
	return nil
}

// wizardInputGoal creates a huh form to enter the daily goal, prefilled
// with the current one.
func wizardInputGoal(current int, result *string) *huh.Form {
	*result = strconv.Itoa(current)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily goal (problems per day)").
				Description(fmt.Sprintf("%d to %d", domain.MinDailyGoal, domain.MaxDailyGoal)).
				Value(result).
				Validate(validateGoal),
		),
	).WithTheme(sansuHuhTheme()).WithShowHelp(false)
}

// saveGoal parses the form value and stores it as the daily goal.
func saveGoal(ctx context.Context, app *App, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parsing goal %q: %w", raw, domain.ErrInvalidInput)
	}
	if err := app.Progress.SetGoal(ctx, n); err != nil {
		return 0, err
	}
	return n, nil
}

// goalWizardCmd pushes the goal form. On completion the goal is saved and
// the home screen reloads its snapshot.
func goalWizardCmd(state *SharedState) tea.Cmd {
	app := state.App
	current, err := app.Progress.Goal(context.Background())
	if err != nil {
		app.logger().WithError(err).Warn("reading daily goal")
		current = app.defaultGoal()
	}

	var raw string
	form := wizardInputGoal(current, &raw)
	return startWizardCmd(state, "Goal", form, func() tea.Cmd {
		n, err := saveGoal(context.Background(), app, raw)
		if err != nil {
			return outputCmd(formatter.StyleRed.Render("Error: " + err.Error()))
		}
		return outputCmd(formatter.StyleGreen.Render(fmt.Sprintf("Daily goal set to %d.", n)))
	})
}
