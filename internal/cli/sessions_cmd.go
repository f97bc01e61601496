package cli

import (
	"fmt"
	"strconv"

	"github.com/sansu-app/sansu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	var (
		days int
		mode modeFlag
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List games started from the home screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(cmd.Context(), days, mode.mode())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions found.")
				return nil
			}

			now := app.now()
			headers := []string{"ID", "MODE", "LEVEL", "STARTED"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				info := s.Mode.Info()
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.Badge(info.Color, info.Symbol) + " " + info.Heading,
					strconv.Itoa(int(s.Level)) + " " + formatter.Dim(s.Mode.LevelLabel(s.Level)),
					formatter.HumanTimestampFrom(s.StartedAt, now),
				})
			}
			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Look back this many days")
	cmd.Flags().Var(&mode, "mode", "Only show this game mode: addition or subtraction")

	return cmd
}
