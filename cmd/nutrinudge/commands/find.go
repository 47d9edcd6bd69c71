package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/pantry"
	"github.com/korjavin/nutrinudge/pkg/report"
)

// find --pantry "a, b" [--diet tag]: one query, then save the meal history.
func findCmd() *cobra.Command {
	var (
		pantryText string
		diet       string
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find recipes for a comma-separated pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, ok := models.ParseDiet(diet)
			if !ok {
				return fmt.Errorf("unknown diet %q (choose from %v)", diet, models.KnownDiets)
			}

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
			results := a.recommender.Recommend(pantry.Parse(pantryText), tag)
			a.recommender.Present(out, session, results)
			report.MealPlan(out, session.Meals())

			if noSave {
				return nil
			}
			return a.endSession(session)
		},
	}

	cmd.Flags().StringVar(&pantryText, "pantry", "", "pantry ingredients, comma-separated")
	cmd.Flags().StringVar(&diet, "diet", string(models.DietNone), "dietary filter: vegan, vegetarian, gluten-free or none")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not add the results to the meal history")
	_ = cmd.MarkFlagRequired("pantry")
	return cmd
}
