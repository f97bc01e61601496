package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newHomeCmd(app *App) *cobra.Command {
	var format outputFormat = formatText

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the home screen and pick a game",
		Long: `Open the home screen. Choosing a level records a play session, closes the
screen and prints the selection for the game engine.

Without a terminal on stdin the stamp calendar is printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, app, format)
		},
	}
	cmd.Flags().Var(&format, "format", "Selection output format: text, json or yaml")

	return cmd
}

func runHome(cmd *cobra.Command, app *App, format outputFormat) error {
	out := cmd.OutOrStdout()

	if !app.interactive() {
		if err := printCalendar(cmd, app); err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.Dim("Run sansu in a terminal to choose a game."))
		return nil
	}

	m := newAppModel(app)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running home screen: %w", err)
	}

	if m.state.Started == nil {
		return nil
	}
	return printSelection(out, m.state.Started, format)
}

// selectionOutput is what a wrapper script reads to launch the game engine.
type selectionOutput struct {
	SessionID string    `json:"session_id" yaml:"session_id"`
	Mode      string    `json:"mode" yaml:"mode"`
	Level     int       `json:"level" yaml:"level"`
	Label     string    `json:"label" yaml:"label"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
}

func newSelectionOutput(s *domain.PlaySession) selectionOutput {
	return selectionOutput{
		SessionID: s.ID,
		Mode:      string(s.Mode),
		Level:     int(s.Level),
		Label:     s.Mode.LevelLabel(s.Level),
		StartedAt: s.StartedAt,
	}
}

func printSelection(w io.Writer, s *domain.PlaySession, format outputFormat) error {
	sel := newSelectionOutput(s)

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sel)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sel); err != nil {
			return fmt.Errorf("encoding selection: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(w, "%s %d %s\n", sel.Mode, sel.Level, sel.SessionID)
		return err
	}
}
