package history

import (
	"sort"

	"github.com/korjavin/nutrinudge/pkg/models"
)

// RecipeStat summarizes how often a recipe was presented
type RecipeStat struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	AvgScore  float64 `json:"avg_score"`
	BestScore float64 `json:"best_score"`
}

// Summarize groups meals by recipe name. Stats are sorted by count
// (descending), then by name.
func Summarize(meals []models.SavedMeal) []RecipeStat {
	byName := make(map[string]*RecipeStat)
	totals := make(map[string]float64)

	for _, meal := range meals {
		stat, ok := byName[meal.Name]
		if !ok {
			stat = &RecipeStat{Name: meal.Name}
			byName[meal.Name] = stat
		}
		stat.Count++
		totals[meal.Name] += meal.MatchScore
		if meal.MatchScore > stat.BestScore {
			stat.BestScore = meal.MatchScore
		}
	}

	stats := make([]RecipeStat, 0, len(byName))
	for name, stat := range byName {
		stat.AvgScore = totals[name] / float64(stat.Count)
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}
