package cli

import (
	"fmt"
	"strconv"

	"github.com/sansu-app/sansu/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goal [N]",
		Short: "Show or set the daily goal",
		Long: fmt.Sprintf(`Show or set how many problems count as a full day (%d-%d).
With no argument on a terminal, a form asks for the new goal.`, domain.MinDailyGoal, domain.MaxDailyGoal),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parsing goal %q: %w", args[0], domain.ErrInvalidInput)
				}
				if err := app.Progress.SetGoal(ctx, n); err != nil {
					return err
				}
				fmt.Fprintf(out, "Daily goal set to %d.\n", n)
				return nil
			}

			current, err := app.Progress.Goal(ctx)
			if err != nil {
				return fmt.Errorf("reading daily goal: %w", err)
			}

			if !app.interactive() {
				fmt.Fprintf(out, "Daily goal: %d\n", current)
				return nil
			}

			var raw string
			if err := wizardInputGoal(current, &raw).RunWithContext(ctx); err != nil {
				return fmt.Errorf("reading goal form: %w", err)
			}
			n, err := saveGoal(ctx, app, raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Daily goal set to %d.\n", n)
			return nil
		},
	}
}
