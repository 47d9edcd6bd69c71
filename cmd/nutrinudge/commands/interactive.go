package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/pantry"
	"github.com/korjavin/nutrinudge/pkg/report"
)

// interactive: prompt for a pantry and a diet, show matches, save history.
func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Ask for your pantry and diet, then suggest recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			return runInteractive(a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runInteractive(a *app, in io.Reader, out io.Writer) error {
	session, err := a.startSession()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	fmt.Fprintln(out, "=== Welcome to NutriNudge! ===")

	pantryText, err := prompt(reader, out, "Enter your pantry ingredients (comma-separated ex: sitaw, bawang, calamansi juice, soy sauce): ")
	if err != nil {
		return err
	}

	choices := make([]string, len(models.KnownDiets))
	for i, d := range models.KnownDiets {
		choices[i] = string(d)
	}
	dietText, err := prompt(reader, out, fmt.Sprintf("Dietary preference (%s): ", strings.Join(choices, "/")))
	if err != nil {
		return err
	}
	diet, ok := models.ParseDiet(dietText)
	if !ok {
		fmt.Fprintln(out, "Invalid choice. Using 'none' as default.")
	}

	results := a.recommender.Recommend(pantry.Parse(pantryText), diet)
	a.recommender.Present(out, session, results)
	report.MealPlan(out, session.Meals())

	return a.endSession(session)
}

// prompt reads one line. EOF after partial input is accepted as the answer.
func prompt(r *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
