// Package pantry canonicalizes ingredient names and holds the set of
// ingredients a user has on hand.
package pantry

import (
	"sort"
	"strings"
)

// Normalize canonicalizes an ingredient name for comparison: lowercase,
// surrounding whitespace trimmed. Nothing else is changed.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Pantry is a set of normalized ingredient names
type Pantry map[string]struct{}

// New builds a pantry from ingredient names. Names are normalized, duplicates
// collapse and empty names are dropped.
func New(items ...string) Pantry {
	p := make(Pantry, len(items))
	for _, item := range items {
		p.Add(item)
	}
	return p
}

// Parse builds a pantry from comma-separated text
func Parse(text string) Pantry {
	return New(strings.Split(text, ",")...)
}

// Add inserts an ingredient name
func (p Pantry) Add(name string) {
	if n := Normalize(name); n != "" {
		p[n] = struct{}{}
	}
}

// Contains reports whether the normalized form of name is in the pantry
func (p Pantry) Contains(name string) bool {
	_, ok := p[Normalize(name)]
	return ok
}

// Len returns the number of distinct ingredients
func (p Pantry) Len() int {
	return len(p)
}

// Items returns the ingredients in sorted order
func (p Pantry) Items() []string {
	items := make([]string, 0, len(p))
	for item := range p {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
