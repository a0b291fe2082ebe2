package data

import (
	"log/slog"
	"slices"

	"github.com/wanderergame/worldthreat/internal/model"
)

// Legal affinity values per category. The boss evolution engine only ever
// draws buff/curse values from these pools.
var (
	elementalPool = []string{
		"fire", "water", "earth", "wind", "thunder", "ice", "light", "dark",
	}
	archetypePool = []string{
		"warrior", "mage", "archer", "healer", "assassin", "tank", "support", "trickster",
	}
	genrePool = []string{
		"action", "adventure", "comedy", "drama", "fantasy",
		"romance", "sci-fi", "slice_of_life", "supernatural",
	}
)

// AffinityPools returns the legal values per affinity category. The series
// pool is derived from the loaded character catalog, so LoadCharacters must
// run first.
func AffinityPools() map[model.AffinityCategory][]string {
	var series []string
	for _, c := range CharacterTable {
		key := c.SeriesKey()
		if !slices.Contains(series, key) {
			series = append(series, key)
		}
	}
	slices.Sort(series)

	if len(series) == 0 {
		slog.Warn("affinity series pool is empty, character catalog not loaded")
	}

	return map[model.AffinityCategory][]string{
		model.AffinityElemental: slices.Clone(elementalPool),
		model.AffinityArchetype: slices.Clone(archetypePool),
		model.AffinityGenre:     slices.Clone(genrePool),
		model.AffinitySeries:    series,
	}
}
