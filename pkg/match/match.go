// Package match scores recipes against a pantry, filters them by diet and
// score, and ranks the survivors.
package match

import (
	"sort"
	"strings"

	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/pantry"
)

// Threshold is the minimum score, inclusive, for a recipe to be offered
const Threshold = 75.0

// Result is a recipe that cleared the filters together with its score
type Result struct {
	Recipe  *models.Recipe
	Score   float64
	Matched []string
}

// Score computes the percentage of ingredients present in the pantry and
// returns the matched ingredients in recipe order with their original
// spelling. Repeated ingredients count once per occurrence. An empty
// ingredient list scores 0.
func Score(p pantry.Pantry, ingredients []string) (float64, []string) {
	matched := make([]string, 0, len(ingredients))
	if len(ingredients) == 0 {
		return 0, matched
	}

	// Pantry keys may come from a literal map rather than New
	normalized := make(map[string]bool, len(p))
	for item := range p {
		normalized[pantry.Normalize(item)] = true
	}

	for _, ingredient := range ingredients {
		if normalized[pantry.Normalize(ingredient)] {
			matched = append(matched, ingredient)
		}
	}

	return float64(len(matched)) / float64(len(ingredients)) * 100, matched
}

// FindMatches returns the recipes that satisfy diet and score at least
// Threshold, in catalog order. Diet "none" (or empty) disables the dietary
// filter; any other tag keeps only recipes that declare it true.
func FindMatches(p pantry.Pantry, recipes []models.Recipe, diet models.DietTag) []Result {
	diet = models.DietTag(strings.ToLower(strings.TrimSpace(string(diet))))
	filterDiet := diet != "" && diet != models.DietNone

	results := make([]Result, 0)
	for i := range recipes {
		recipe := &recipes[i]
		if filterDiet && !recipe.Supports(diet) {
			continue
		}

		score, matched := Score(p, recipe.Ingredients)
		if score >= Threshold {
			results = append(results, Result{
				Recipe:  recipe,
				Score:   score,
				Matched: matched,
			})
		}
	}

	return results
}

// Rank sorts results by score, highest first. Equal scores keep their
// relative order.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
