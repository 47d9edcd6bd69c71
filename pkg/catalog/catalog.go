// Package catalog loads the recipe catalog from JSON and validates its
// structure before any recipe reaches the matcher.
package catalog

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/korjavin/nutrinudge/pkg/models"
)

// ErrMalformedRecipe marks a record that is missing required fields or has
// fields of the wrong type
var ErrMalformedRecipe = errors.New("malformed recipe")

// Result is the outcome of loading a catalog
type Result struct {
	Status  models.LoadStatus
	Recipes []models.Recipe
	Err     error
}

// RecipesOrEmpty returns the loaded recipes, or an empty catalog for any
// other status
func (r Result) RecipesOrEmpty() []models.Recipe {
	if r.Status != models.Loaded || r.Recipes == nil {
		return []models.Recipe{}
	}
	return r.Recipes
}

// Load reads the catalog at path
func Load(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Status: models.NotFound, Err: errors.Wrapf(err, "recipe catalog %s", path)}
		}
		return Result{Status: models.ParseError, Err: errors.Wrapf(err, "open recipe catalog %s", path)}
	}
	defer f.Close()

	recipes, err := Decode(f)
	if err != nil {
		return Result{Status: models.ParseError, Err: errors.Wrapf(err, "recipe catalog %s", path)}
	}
	return Result{Status: models.Loaded, Recipes: recipes}
}

// record mirrors a catalog entry with pointers so absent fields can be told
// apart from empty ones
type record struct {
	Name         string                 `json:"name"`
	Ingredients  *[]string              `json:"ingredients"`
	Nutrition    map[string]interface{} `json:"nutrition"`
	Price        float64                `json:"price"`
	Dietary      map[string]bool        `json:"dietary"`
	Instructions models.Instructions    `json:"instructions"`
}

// Decode reads a JSON array of recipes. The first malformed record fails the
// whole catalog.
func Decode(r io.Reader) ([]models.Recipe, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	recipes := make([]models.Recipe, 0, len(raw))
	for i, msg := range raw {
		recipe, err := decodeRecord(msg)
		if err != nil {
			return nil, errors.Wrapf(err, "recipe #%d", i)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func decodeRecord(msg json.RawMessage) (models.Recipe, error) {
	var rec record
	if err := json.Unmarshal(msg, &rec); err != nil {
		return models.Recipe{}, errors.Wrapf(ErrMalformedRecipe, "%v", err)
	}
	if rec.Name == "" {
		return models.Recipe{}, errors.Wrap(ErrMalformedRecipe, "missing name")
	}
	if rec.Ingredients == nil {
		return models.Recipe{}, errors.Wrapf(ErrMalformedRecipe, "%s: missing ingredients", rec.Name)
	}
	if rec.Price < 0 {
		return models.Recipe{}, errors.Wrapf(ErrMalformedRecipe, "%s: negative price %.2f", rec.Name, rec.Price)
	}

	return models.Recipe{
		Name:         rec.Name,
		Ingredients:  *rec.Ingredients,
		Nutrition:    rec.Nutrition,
		Price:        rec.Price,
		Dietary:      rec.Dietary,
		Instructions: rec.Instructions,
	}, nil
}
