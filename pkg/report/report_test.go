package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/match"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/pantry"
	"github.com/korjavin/nutrinudge/pkg/prices"
	"github.com/korjavin/nutrinudge/pkg/swaps"
)

func sampleResult(p pantry.Pantry) match.Result {
	recipe := &models.Recipe{
		Name:         "Tofu Sisig",
		Ingredients:  []string{"tofu", "sibuyas", "bawang", "calamansi juice"},
		Nutrition:    map[string]interface{}{"protein": "18g", "calories": 320},
		Price:        1095,
		Instructions: models.RawText("Fry the tofu. Toss with the rest."),
	}
	score, matched := match.Score(p, recipe.Ingredients)
	return match.Result{Recipe: recipe, Score: score, Matched: matched}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "₱15.00", Money(15))
	assert.Equal(t, "₱1,234.50", Money(1234.5))
}

func TestRecipePartialMatch(t *testing.T) {
	var buf bytes.Buffer
	Recipe(&buf, sampleResult(pantry.New("tofu", "bawang", "calamansi juice")), prices.Default(), swaps.Default())
	out := buf.String()

	assert.Contains(t, out, "==== Tofu Sisig ====")
	assert.Contains(t, out, "Price: ₱1,095.00")
	assert.Contains(t, out, "Match Score: 75.0%")
	assert.Contains(t, out, "Missing Ingredients:\n  - sibuyas (₱15.00)\n")
	assert.Contains(t, out, "Total cost for missing ingredients: ₱15.00")
	assert.Contains(t, out, "  - sibuyas -> leeks\n  - bawang -> shallots\n")
	assert.Contains(t, out, "  Step 1: Fry the tofu\n  Step 2: Toss with the rest\n")

	// nutrition keys are printed in sorted order
	assert.Less(t, strings.Index(out, "calories: 320"), strings.Index(out, "protein: 18g"))
}

func TestRecipeFullMatchHasNoMissingSection(t *testing.T) {
	var buf bytes.Buffer
	Recipe(&buf, sampleResult(pantry.New("tofu", "sibuyas", "bawang", "calamansi juice")), prices.Default(), swaps.Table{})

	assert.Contains(t, buf.String(), "Match Score: 100.0%")
	assert.NotContains(t, buf.String(), "Missing Ingredients")
	assert.NotContains(t, buf.String(), "Healthier swaps")
}

func TestMatchesHeader(t *testing.T) {
	var buf bytes.Buffer
	Matches(&buf, nil)
	assert.Equal(t, "Sorry, no matching recipes found!\n", buf.String())

	buf.Reset()
	Matches(&buf, []match.Result{sampleResult(pantry.New())})
	assert.Contains(t, buf.String(), "Found 1 matching recipes:")
}

func TestMealPlan(t *testing.T) {
	var buf bytes.Buffer
	MealPlan(&buf, nil)
	assert.Contains(t, buf.String(), "No meals saved yet.")

	buf.Reset()
	MealPlan(&buf, []models.SavedMeal{{Name: "Tofu Sisig", MatchScore: 75}})
	assert.Contains(t, buf.String(), "  - Tofu Sisig (Match: 75.0%)")
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	Stats(&buf, []history.RecipeStat{{Name: "A", Count: 2, AvgScore: 90, BestScore: 100}, {Name: "B", Count: 1, AvgScore: 75, BestScore: 75}})

	assert.Contains(t, buf.String(), "A: 2 times (avg 90.0%, best 100.0%)")
	assert.Contains(t, buf.String(), "B: 1 time (avg 75.0%, best 75.0%)")
}

func TestShort(t *testing.T) {
	out := Short(sampleResult(pantry.New("tofu", "bawang", "calamansi juice")), prices.Default())

	assert.Contains(t, out, "Tofu Sisig: 75.0% match, ₱1,095.00")
	assert.Contains(t, out, "Missing: sibuyas (₱15.00)")
	assert.Contains(t, out, "1. Fry the tofu")
}
