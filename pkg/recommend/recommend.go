// Package recommend ties the catalog, price table and swap table together
// for front ends.
package recommend

import (
	"io"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/match"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/pantry"
	"github.com/korjavin/nutrinudge/pkg/prices"
	"github.com/korjavin/nutrinudge/pkg/report"
	"github.com/korjavin/nutrinudge/pkg/swaps"
)

// Service answers pantry queries against a fixed catalog
type Service struct {
	recipes []models.Recipe
	prices  prices.Table
	swaps   swaps.Table
}

// New creates a recommendation service. The inputs are read, never modified.
func New(recipes []models.Recipe, priceTable prices.Table, swapTable swaps.Table) *Service {
	return &Service{
		recipes: recipes,
		prices:  priceTable,
		swaps:   swapTable,
	}
}

// Prices returns the price table used for missing ingredients
func (s *Service) Prices() prices.Table {
	return s.prices
}

// Swap returns a healthier replacement for an ingredient, if one is known
func (s *Service) Swap(ingredient string) (string, bool) {
	return s.swaps.For(ingredient)
}

// CatalogSize returns the number of recipes available
func (s *Service) CatalogSize() int {
	return len(s.recipes)
}

// Recommend returns the matching recipes, best first
func (s *Service) Recommend(p pantry.Pantry, diet models.DietTag) []match.Result {
	results := match.FindMatches(p, s.recipes, diet)
	match.Rank(results)
	return results
}

// Present writes every result to w in order and records each one in session
func (s *Service) Present(w io.Writer, session *history.Session, results []match.Result) {
	report.Matches(w, results)
	for _, r := range results {
		report.Recipe(w, r, s.prices, s.swaps)
		session.Record(r)
	}
}
