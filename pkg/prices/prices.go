// Package prices holds the unit cost of ingredients, used to price what a
// recipe is missing.
package prices

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Table maps an ingredient name to its unit cost in pesos. Keys are matched
// literally: no normalization is applied on lookup.
type Table map[string]float64

// Get returns the cost of an ingredient, or 0 when it is not listed
func (t Table) Get(ingredient string) float64 {
	return t[ingredient]
}

var defaults = Table{
	"brown rice": 15.00, "munggo": 20.00, "malunggay": 10.00, "calamansi juice": 10.00,
	"tofu": 30.00, "kangkong": 15.00, "kamatis": 20.00, "sibuyas": 15.00,
	"sweet potato": 20.00, "coconut milk": 25.00, "kalabasa": 15.00, "talong": 15.00,
	"tilapia": 50.00, "sigarilyas": 20.00, "bawang": 10.00, "luya": 10.00,
	"banana": 10.00, "avocado": 30.00, "sweet potato noodles": 25.00, "bagoong": 15.00,
	"pandan": 10.00, "tamarind": 15.00, "chili pepper": 10.00, "singkamas": 15.00,
	"mani": 20.00, "bataw": 20.00, "patani": 20.00, "kundol": 15.00, "patola": 20.00,
	"upo": 15.00, "labanos": 15.00, "mustasa": 15.00, "linga": 30.00, "ampalaya": 20.00,
	"gabi": 15.00, "kabute": 25.00, "kamote tops": 10.00, "langka": 25.00, "mais": 15.00,
	"flour": 30.00, "pechay": 15.00, "pipino": 15.00, "repolyo": 20.00, "sayote": 15.00,
	"gluten-free soy sauce": 35.00,
}

// Default returns a copy of the built-in price table
func Default() Table {
	t := make(Table, len(defaults))
	for name, cost := range defaults {
		t[name] = cost
	}
	return t
}

// Load reads a JSON object of ingredient costs from path and merges it over
// the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, errors.Wrapf(err, "read price table %s", path)
	}

	var overrides Table
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, errors.Wrapf(err, "parse price table %s", path)
	}

	for name, cost := range overrides {
		if cost < 0 {
			return nil, errors.Errorf("price table %s: negative cost %.2f for %q", path, cost, name)
		}
		t[name] = cost
	}
	return t, nil
}
