package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Print this month's stamp calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCalendar(cmd, app)
		},
	}
}

// printCalendar renders the stamp calendar for the current snapshot.
func printCalendar(cmd *cobra.Command, app *App) error {
	now := app.now()
	snap, err := app.Progress.Snapshot(cmd.Context(), now)
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}
	cal := StampCalendar{Snapshot: snap, Today: now, DefaultGoal: app.defaultGoal()}
	fmt.Fprintln(cmd.OutOrStdout(), cal.View())
	return nil
}
