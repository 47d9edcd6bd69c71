// Package report renders matches and meal history for the console and for
// chat replies.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/match"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/prices"
	"github.com/korjavin/nutrinudge/pkg/swaps"
)

// Money formats an amount in pesos, e.g. ₱1,234.50
func Money(amount float64) string {
	return "₱" + humanize.FormatFloat("#,###.##", amount)
}

// Recipe writes the full description of one match
func Recipe(w io.Writer, r match.Result, table prices.Table, swapTable swaps.Table) {
	recipe := r.Recipe

	fmt.Fprintf(w, "\n==== %s ====\n", recipe.Name)
	fmt.Fprintln(w, "Ingredients:")
	for _, ingredient := range recipe.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ingredient)
	}

	if len(recipe.Nutrition) > 0 {
		fmt.Fprintln(w, "\nNutrition:")
		keys := make([]string, 0, len(recipe.Nutrition))
		for key := range recipe.Nutrition {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(w, "  %s: %v\n", key, recipe.Nutrition[key])
		}
	}

	fmt.Fprintf(w, "\nPrice: %s\n", Money(recipe.Price))
	fmt.Fprintf(w, "Match Score: %.1f%%\n", r.Score)

	if r.Score < 100 {
		missing := match.MissingFor(r, table)
		fmt.Fprintln(w, "\nMissing Ingredients:")
		for _, ing := range missing.Ingredients {
			fmt.Fprintf(w, "  - %s (%s)\n", ing.Name, Money(ing.Cost))
		}
		fmt.Fprintf(w, "Total cost for missing ingredients: %s\n", Money(missing.Total))
	}

	if suggestions := swapTable.Suggest(recipe.Ingredients); len(suggestions) > 0 {
		fmt.Fprintln(w, "\nHealthier swaps:")
		for _, s := range suggestions {
			fmt.Fprintf(w, "  - %s -> %s\n", s.Ingredient, s.Replacement)
		}
	}

	fmt.Fprintln(w, "\nCooking Instructions:")
	for i, step := range recipe.Instructions.Steps() {
		fmt.Fprintf(w, "  Step %d: %s\n", i+1, step)
	}
}

// Matches writes the header for a ranked result list
func Matches(w io.Writer, results []match.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Sorry, no matching recipes found!")
		return
	}
	fmt.Fprintf(w, "\nFound %d matching recipes:\n", len(results))
}

// MealPlan writes the meal plan summary, one line per saved meal
func MealPlan(w io.Writer, meals []models.SavedMeal) {
	fmt.Fprintln(w, "\n=== Meal Plan Summary ===")
	if len(meals) == 0 {
		fmt.Fprintln(w, "No meals saved yet.")
		return
	}
	for _, meal := range meals {
		fmt.Fprintf(w, "  - %s (Match: %.1f%%)\n", meal.Name, meal.MatchScore)
	}
}

// Stats writes per-recipe history statistics
func Stats(w io.Writer, stats []history.RecipeStat) {
	if len(stats) == 0 {
		return
	}
	fmt.Fprintln(w, "\n=== Most Suggested ===")
	for _, s := range stats {
		fmt.Fprintf(w, "  - %s: %s (avg %.1f%%, best %.1f%%)\n",
			s.Name, plural(s.Count, "time"), s.AvgScore, s.BestScore)
	}
}

// Short renders a compact one-match summary for chat replies
func Short(r match.Result, table prices.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ %s: %.1f%% match, %s\n", r.Recipe.Name, r.Score, Money(r.Recipe.Price))
	if missing := match.MissingFor(r, table); len(missing.Ingredients) > 0 {
		fmt.Fprintf(&b, "Missing: %s (%s)\n", strings.Join(missing.Names(), ", "), Money(missing.Total))
	}
	for i, step := range r.Recipe.Instructions.Steps() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
