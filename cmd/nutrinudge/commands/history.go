package commands

import (
	"github.com/spf13/cobra"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/report"
)

// history: print the saved meal plan and per-recipe statistics.
func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the saved meal plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			session, err := a.startSession()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.MealPlan(out, session.Meals())
			report.Stats(out, history.Summarize(session.Meals()))
			return nil
		},
	}
}
