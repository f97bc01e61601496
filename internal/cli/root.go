package cli

import (
	"io"
	"time"

	"github.com/sansu-app/sansu/internal/config"
	"github.com/sansu-app/sansu/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is shown in the home screen footer. Overridden at build time with
// -ldflags "-X github.com/sansu-app/sansu/internal/cli.Version=...".
var Version = "dev"

// App holds the services and runtime settings used by CLI commands and the TUI.
type App struct {
	Progress service.ProgressService
	Sessions service.SessionService

	Log logrus.FieldLogger

	// RefreshInterval is how often the home screen re-polls progress.
	// Zero disables polling.
	RefreshInterval time.Duration

	// DefaultGoal is shown by the calendar before any snapshot loads.
	DefaultGoal int

	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() logrus.FieldLogger {
	if a.Log != nil {
		return a.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultGoal() int {
	if a.DefaultGoal > 0 {
		return a.DefaultGoal
	}
	return config.DefaultDailyGoal
}

// NewRootCmd creates the top-level "sansu" command. Run bare, it opens the
// home screen.
func NewRootCmd(app *App) *cobra.Command {
	var format outputFormat = formatText

	root := &cobra.Command{
		Use:          "sansu",
		Short:        "Arithmetic practice launcher with a daily stamp calendar",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, app, format)
		},
	}
	root.Flags().Var(&format, "format", "Selection output format: text, json or yaml")

	root.AddCommand(
		newHomeCmd(app),
		newRecordCmd(app),
		newGoalCmd(app),
		newCalendarCmd(app),
		newSessionsCmd(app),
	)

	return root
}
