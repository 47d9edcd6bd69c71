// Package history records the meals a user was shown and persists them
// between sessions.
package history

import (
	"github.com/korjavin/nutrinudge/pkg/match"
	"github.com/korjavin/nutrinudge/pkg/models"
)

// Session accumulates meal history for one run of the program. Create it at
// session start with the persisted history, record each presented match, and
// hand Meals to a Store when the session ends.
type Session struct {
	meals []models.SavedMeal
}

// NewSession starts a session on top of previously saved meals
func NewSession(previous []models.SavedMeal) *Session {
	meals := make([]models.SavedMeal, len(previous))
	copy(meals, previous)
	return &Session{meals: meals}
}

// Record appends the presented match to the history
func (s *Session) Record(r match.Result) {
	s.meals = append(s.meals, models.SavedMeal{
		Name:       r.Recipe.Name,
		MatchScore: r.Score,
	})
}

// Meals returns a copy of the history, oldest first
func (s *Session) Meals() []models.SavedMeal {
	out := make([]models.SavedMeal, len(s.meals))
	copy(out, s.meals)
	return out
}

// Len returns the number of entries
func (s *Session) Len() int {
	return len(s.meals)
}
