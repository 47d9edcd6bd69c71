package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korjavin/nutrinudge/pkg/models"
)

func TestLoadFixture(t *testing.T) {
	res := Load(filepath.Join("testdata", "recipes.json"))
	require.NoError(t, res.Err)
	require.Equal(t, models.Loaded, res.Status)
	require.Len(t, res.Recipes, 3)

	sisig := res.Recipes[0]
	assert.Equal(t, "Tofu Sisig", sisig.Name)
	assert.True(t, sisig.Supports(models.DietVegan))
	assert.False(t, sisig.Supports(models.DietGlutenFree))
	assert.True(t, sisig.Instructions.IsRaw())
	assert.Equal(t, []string{
		"Fry the tofu until crisp",
		"Saute bawang and sibuyas",
		"Toss everything with calamansi juice and chili pepper",
	}, sisig.Instructions.Steps())

	munggo := res.Recipes[1]
	assert.False(t, munggo.Instructions.IsRaw())
	assert.Len(t, munggo.Instructions.Steps(), 3)

	tilapia := res.Recipes[2]
	assert.Nil(t, tilapia.Dietary)
	assert.False(t, tilapia.Supports(models.DietVegan))
	assert.Empty(t, tilapia.Instructions.Steps())
}

func TestLoadNotFound(t *testing.T) {
	res := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, models.NotFound, res.Status)
	assert.Error(t, res.Err)
	assert.Empty(t, res.RecipesOrEmpty())
	assert.NotNil(t, res.RecipesOrEmpty())
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "not a list"}`), 0o644))

	res := Load(path)
	assert.Equal(t, models.ParseError, res.Status)
	assert.Error(t, res.Err)
	assert.Empty(t, res.RecipesOrEmpty())
}

func TestDecodeMalformedRecords(t *testing.T) {
	cases := map[string]string{
		"missing ingredients": `[{"name": "A", "price": 1}]`,
		"null ingredients":    `[{"name": "A", "ingredients": null}]`,
		"string ingredients":  `[{"name": "A", "ingredients": "tofu"}]`,
		"missing name":        `[{"ingredients": ["tofu"]}]`,
		"negative price":      `[{"name": "A", "ingredients": ["tofu"], "price": -5}]`,
		"bad instructions":    `[{"name": "A", "ingredients": ["tofu"], "instructions": 3}]`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			recipes, err := Decode(strings.NewReader(input))
			assert.Nil(t, recipes)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecipe), "got %v", err)
			assert.Contains(t, err.Error(), "recipe #0")
		})
	}
}

func TestDecodeEmptyIngredientsIsValid(t *testing.T) {
	recipes, err := Decode(strings.NewReader(`[{"name": "Water", "ingredients": []}]`))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Empty(t, recipes[0].Ingredients)
}

func TestDecodeEmptyCatalog(t *testing.T) {
	recipes, err := Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
