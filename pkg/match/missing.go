package match

import (
	"github.com/korjavin/nutrinudge/pkg/prices"
)

// MissingIngredient is a recipe ingredient the pantry lacks
type MissingIngredient struct {
	Name string
	Cost float64
}

// Missing lists what a recipe still needs and what it costs
type Missing struct {
	Ingredients []MissingIngredient
	Total       float64
}

// MissingFor derives the missing ingredients of a result in recipe order.
// Costs are looked up with the recipe's own spelling of each ingredient, so a
// price table key that differs in case or spacing prices it at 0.
func MissingFor(r Result, table prices.Table) Missing {
	var missing Missing
	if r.Recipe == nil || r.Score >= 100 {
		return missing
	}

	matched := make(map[string]bool, len(r.Matched))
	for _, name := range r.Matched {
		matched[name] = true
	}

	for _, name := range r.Recipe.Ingredients {
		if matched[name] {
			continue
		}
		cost := table.Get(name)
		missing.Ingredients = append(missing.Ingredients, MissingIngredient{Name: name, Cost: cost})
		missing.Total += cost
	}

	return missing
}

// Names returns the missing ingredient names in order
func (m Missing) Names() []string {
	names := make([]string, len(m.Ingredients))
	for i, ing := range m.Ingredients {
		names[i] = ing.Name
	}
	return names
}
