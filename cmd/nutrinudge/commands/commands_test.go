package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/models"
)

const testCatalog = `[
  {"name": "Tofu Rice Bowl", "ingredients": ["brown rice", "tofu", "bawang"], "price": 80,
   "dietary": {"vegan": true}, "instructions": "Cook the rice. Fry the tofu."},
  {"name": "Adobo", "ingredients": ["pork", "soy sauce"], "price": 150}
]`

func setup(t *testing.T) (recipes, meals string) {
	t.Helper()
	dir := t.TempDir()

	recipes = filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(recipes, []byte(testCatalog), 0o644))
	meals = filepath.Join(dir, "saved_meals.json")

	for _, key := range []string{"RECIPES_FILE", "PRICES_FILE", "HISTORY_FILE", "HISTORY_BACKEND", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATA_DIR", filepath.Join(dir, "data"))
	return recipes, meals
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFindCommand(t *testing.T) {
	recipes, meals := setup(t)

	out, err := run(t, "", "find", "--recipes", recipes, "--history-file", meals,
		"--pantry", "Brown Rice, tofu, bawang, luya")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 1 matching recipes:")
	assert.Contains(t, out, "==== Tofu Rice Bowl ====")
	assert.Contains(t, out, "Match Score: 100.0%")
	assert.Contains(t, out, "  - Tofu Rice Bowl (Match: 100.0%)")

	res := history.NewFileStore(meals).Load()
	require.Equal(t, models.Loaded, res.Status)
	assert.Equal(t, []models.SavedMeal{{Name: "Tofu Rice Bowl", MatchScore: 100}}, res.Meals)
}

func TestFindCommandNoSaveAndDiet(t *testing.T) {
	recipes, meals := setup(t)

	out, err := run(t, "", "find", "--recipes", recipes, "--history-file", meals,
		"--pantry", "pork, soy sauce", "--diet", "vegan", "--no-save")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorry, no matching recipes found!")
	assert.Equal(t, models.NotFound, history.NewFileStore(meals).Load().Status)

	_, err = run(t, "", "find", "--recipes", recipes, "--pantry", "tofu", "--diet", "paleo")
	assert.ErrorContains(t, err, "unknown diet")
}

func TestFindCommandMissingCatalog(t *testing.T) {
	_, meals := setup(t)

	out, err := run(t, "", "find", "--recipes", filepath.Join(t.TempDir(), "none.json"),
		"--history-file", meals, "--pantry", "tofu")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorry, no matching recipes found!")
	assert.Contains(t, out, "[WARN] Recipe catalog")
}

func TestFindCommandMalformedCatalog(t *testing.T) {
	_, meals := setup(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name": "No ingredients"}]`), 0o644))

	_, err := run(t, "", "find", "--recipes", bad, "--history-file", meals, "--pantry", "tofu")
	assert.ErrorContains(t, err, "malformed recipe")
}

func TestInteractiveCommand(t *testing.T) {
	recipes, meals := setup(t)
	require.NoError(t, history.NewFileStore(meals).Save([]models.SavedMeal{{Name: "Earlier", MatchScore: 80}}))

	out, err := run(t, "tofu, brown rice, bawang\nketo\n", "interactive", "--recipes", recipes, "--history-file", meals)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Welcome to NutriNudge! ===")
	assert.Contains(t, out, "Invalid choice. Using 'none' as default.")
	assert.Contains(t, out, "==== Tofu Rice Bowl ====")
	assert.Contains(t, out, "  - Earlier (Match: 80.0%)\n  - Tofu Rice Bowl (Match: 100.0%)")

	res := history.NewFileStore(meals).Load()
	require.Equal(t, models.Loaded, res.Status)
	assert.Len(t, res.Meals, 2)
}

func TestInteractiveRefusesCorruptHistory(t *testing.T) {
	recipes, meals := setup(t)
	require.NoError(t, os.WriteFile(meals, []byte(`{oops`), 0o644))

	_, err := run(t, "tofu\nnone\n", "interactive", "--recipes", recipes, "--history-file", meals)
	assert.ErrorContains(t, err, "failed to load saved meals")

	data, err := os.ReadFile(meals)
	require.NoError(t, err)
	assert.Equal(t, `{oops`, string(data))
}

func TestHistoryCommandWithBadger(t *testing.T) {
	recipes, _ := setup(t)

	for i := 0; i < 2; i++ {
		_, err := run(t, "", "find", "--recipes", recipes, "--history", "badger",
			"--pantry", "tofu, brown rice, bawang")
		require.NoError(t, err)
	}

	out, err := run(t, "", "history", "--recipes", recipes, "--history", "Badger")
	require.NoError(t, err)
	assert.Contains(t, out, "Tofu Rice Bowl: 2 times (avg 100.0%, best 100.0%)")
}

func TestBotCommandRequiresToken(t *testing.T) {
	recipes, _ := setup(t)
	t.Setenv("BOT_TOKEN", "")

	_, err := run(t, "", "bot", "--recipes", recipes)
	assert.ErrorContains(t, err, "BOT_TOKEN")
}
