// Package swaps suggests healthier replacements for recipe ingredients.
// Suggestions are informational and never change how a recipe scores.
package swaps

import (
	"github.com/korjavin/nutrinudge/pkg/pantry"
)

// Swap pairs a recipe ingredient with its suggested replacement
type Swap struct {
	Ingredient  string `json:"ingredient"`
	Replacement string `json:"replacement"`
}

// Table maps a normalized ingredient name to a healthier alternative
type Table map[string]string

var defaults = Table{
	"white rice": "brown rice", "pork": "tofu", "soy sauce": "calamansi juice",
	"pasta": "sweet potato noodles", "cream": "coconut milk", "singkamas": "carrots",
	"talong": "zucchini", "mani": "edamame", "munggo": "lentils",
	"bataw": "green beans", "patani": "chickpeas", "kundol": "daikon radish",
	"patola": "okra", "upo": "chayote", "kalabasa": "sweet potato",
	"labanos": "turnip", "mustasa": "kangkong", "sibuyas": "leeks",
	"kamatis": "bell pepper", "bawang": "shallots", "luya": "turmeric",
	"linga": "chia seeds", "sigarilyas": "asparagus",
}

// Default returns a copy of the built-in swap table
func Default() Table {
	t := make(Table, len(defaults))
	for from, to := range defaults {
		t[from] = to
	}
	return t
}

// For returns the replacement for an ingredient, if any
func (t Table) For(ingredient string) (string, bool) {
	replacement, ok := t[pantry.Normalize(ingredient)]
	return replacement, ok
}

// Suggest lists swaps for the given ingredients in their original order.
// Each ingredient is suggested at most once.
func (t Table) Suggest(ingredients []string) []Swap {
	var out []Swap
	seen := make(map[string]bool)
	for _, ingredient := range ingredients {
		key := pantry.Normalize(ingredient)
		if seen[key] {
			continue
		}
		seen[key] = true
		if replacement, ok := t[key]; ok {
			out = append(out, Swap{Ingredient: ingredient, Replacement: replacement})
		}
	}
	return out
}
