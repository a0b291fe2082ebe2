package threat

import (
	"log/slog"

	"github.com/wanderergame/worldthreat/internal/model"
	"github.com/wanderergame/worldthreat/internal/random"
)

// Research adaptation ratchet: cumulative research actions unlock boss
// adaptation levels, each granting one extra buff slot.
const (
	researchAdaptationThreshold1 = 5
	researchAdaptationThreshold2 = 10
)

// evolve mutates the boss after every successful action: re-rolls the stat
// focus, applies one add-or-evict step to buffs and to curses, and advances
// the adaptation ratchet on research actions. Caller holds s.mu.
func (s *Service) evolve(boss *model.Boss, isResearch bool) {
	// Re-roll 2 distinct dominant stats and a disjoint cursed stat in one
	// permutation draw.
	perm := s.rng.Perm(len(model.AllStats))
	boss.DominantStats = []model.StatTag{
		model.AllStats[perm[0]],
		model.AllStats[perm[1]],
	}
	boss.CursedStat = model.AllStats[perm[2]]

	s.mutateAffinities(boss.Buffs, boss.BuffCap)
	s.mutateAffinities(boss.Curses, boss.CurseCap)

	if isResearch {
		switch {
		case boss.TotalResearchActions >= researchAdaptationThreshold1 && boss.AdaptationLevel == 0:
			boss.AdaptationLevel = 1
			boss.BuffCap++
			slog.Info("boss adapted", "level", 1, "buff_cap", boss.BuffCap)
		case boss.TotalResearchActions >= researchAdaptationThreshold2 && boss.AdaptationLevel == 1:
			boss.AdaptationLevel = 2
			boss.BuffCap++
			slog.Info("boss adapted", "level", 2, "buff_cap", boss.BuffCap)
		}
	}

	slog.Debug("boss evolved",
		"dominant", boss.DominantStats,
		"cursed", boss.CursedStat,
		"buffs", boss.Buffs.Total(),
		"curses", boss.Curses.Total())
}

// mutateAffinities performs one add-or-evict step on an affinity map:
//
//  1. Pick a category, weighted toward those with fewer entries
//     (weight = max_count + 1 − count).
//  2. Draw one value uniformly from that category's legal pool. If the
//     category already holds it, the step is a no-op.
//  3. Append it if the total across categories is below cap; otherwise
//     first evict one random entry from a category weighted by its
//     current count.
//
// Caller holds s.mu.
func (s *Service) mutateAffinities(m model.AffinityMap, capacity int) {
	for _, cat := range model.AffinityCategories {
		if _, ok := m[cat]; !ok {
			m[cat] = nil
		}
	}

	maxCount := 0
	for _, cat := range model.AffinityCategories {
		if n := len(m[cat]); n > maxCount {
			maxCount = n
		}
	}

	insertChoices := make([]random.Weighted[model.AffinityCategory], 0, len(model.AffinityCategories))
	for _, cat := range model.AffinityCategories {
		insertChoices = append(insertChoices, random.Weighted[model.AffinityCategory]{
			Item:   cat,
			Weight: maxCount + 1 - len(m[cat]),
		})
	}
	category, ok := random.PickWeighted(s.rng, insertChoices)
	if !ok {
		return
	}

	pool := s.pools[category]
	if len(pool) == 0 {
		slog.Warn("empty affinity pool", "category", category)
		return
	}
	value := pool[s.rng.IntN(len(pool))]

	if m.Contains(category, value) {
		return
	}

	if m.Total() < capacity {
		m[category] = append(m[category], value)
		return
	}

	evictChoices := make([]random.Weighted[model.AffinityCategory], 0, len(model.AffinityCategories))
	for _, cat := range model.AffinityCategories {
		evictChoices = append(evictChoices, random.Weighted[model.AffinityCategory]{
			Item:   cat,
			Weight: len(m[cat]),
		})
	}
	victim, ok := random.PickWeighted(s.rng, evictChoices)
	if !ok {
		return
	}

	idx := s.rng.IntN(len(m[victim]))
	m[victim] = append(m[victim][:idx], m[victim][idx+1:]...)
	m[category] = append(m[category], value)
}
