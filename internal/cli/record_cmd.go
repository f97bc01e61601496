package cli

import (
	"fmt"
	"time"

	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	var (
		count int
		date  string
		mode  modeFlag
		level int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record finished problems for a day",
		Long: `Record finished problems. The game engine calls this after each round so
the stamp calendar can count toward the daily goal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			day := now
			if date != "" {
				parsed, err := time.ParseInLocation(domain.DayLayout, date, now.Location())
				if err != nil {
					return fmt.Errorf("parsing --date %q: use YYYY-MM-DD: %w", date, domain.ErrInvalidInput)
				}
				day = parsed
			}

			c := &domain.Completion{
				Day:   day,
				Count: count,
				Mode:  mode.mode(),
				Level: domain.Level(level),
			}
			if err := app.Progress.Record(cmd.Context(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d on %s\n", count, domain.DayKey(day))

			snap, err := app.Progress.Snapshot(cmd.Context(), now)
			if err != nil {
				app.logger().WithError(err).Warn("loading progress after record")
				return nil
			}
			if domain.DayKey(day) == domain.DayKey(now) {
				line := fmt.Sprintf("Today: %d / %d  %s", snap.TodayCount, snap.DailyGoal,
					formatter.RenderProgress(snap.TodayRatio(), calendarBarWidth))
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of problems finished")
	cmd.Flags().StringVar(&date, "date", "", "Day to record on (YYYY-MM-DD, default today)")
	cmd.Flags().Var(&mode, "mode", "Game mode: addition or subtraction")
	cmd.Flags().IntVar(&level, "level", 0, "Level 1-3")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}
