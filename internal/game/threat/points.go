package threat

import "github.com/wanderergame/worldthreat/internal/model"

// Balance constants of the point formula.
const (
	// seriesBonusMultiplier applies when all 6 team members share a series.
	seriesBonusMultiplier = 1.5
	// adaptationDamageMultiplier is applied once per boss adaptation level.
	adaptationDamageMultiplier = 0.9
	// affinityBonusPerMatch is added to the affinity multiplier per counted
	// buff match.
	affinityBonusPerMatch = 0.2
	// maxBuffMatchesPerCharacter caps counted buff matches per character
	// even when all four categories match.
	maxBuffMatchesPerCharacter = 3
	// starLevelBonusStep is the per-star base power bonus above star 1.
	starLevelBonusStep = 0.1
)

// RatedMember is a resolved team member: catalog entry plus the caller's
// star level.
type RatedMember struct {
	Character *model.Character
	StarLevel int
}

// PointsBreakdown exposes every intermediate factor of a fight score.
type PointsBreakdown struct {
	BasePower            float64 `json:"base_power"`
	TotalBuffCount       int     `json:"total_buff_count"`
	AffinityMultiplier   float64 `json:"affinity_multiplier"`
	SeriesMultiplier     float64 `json:"series_multiplier"`
	ResearchMultiplier   int     `json:"research_multiplier"`
	AdaptationMultiplier float64 `json:"adaptation_multiplier"`
	FinalPoints          int64   `json:"final_points"`
}

// CalculatePoints scores a fight team against the boss. Pure function:
//
//	final = floor(base_power × affinity × series × research × adaptation)
//
// where per character base = max(0, Σ dominant − cursed) × star bonus, and
// each character contributes up to maxBuffMatchesPerCharacter buff matches
// (at most one per affinity category).
func CalculatePoints(team []RatedMember, boss *model.Boss, researchStacks int) PointsBreakdown {
	basePower := 0.0
	totalBuffCount := 0
	allSameSeries := true

	for _, member := range team {
		c := member.Character

		dominantSum := 0
		for _, tag := range boss.DominantStats {
			dominantSum += c.Stats.Value(tag)
		}
		cursedValue := c.Stats.Value(boss.CursedStat)

		starMultiplier := 1.0 + starLevelBonusStep*float64(member.StarLevel-1)
		charBase := float64(dominantSum-cursedValue) * starMultiplier
		basePower += max(0, charBase)

		totalBuffCount += countBuffMatches(c, boss)

		if c.SeriesID != team[0].Character.SeriesID {
			allSameSeries = false
		}
	}

	affinityMultiplier := 1.0 + affinityBonusPerMatch*float64(totalBuffCount)

	seriesMultiplier := 1.0
	if allSameSeries && len(team) > 0 {
		seriesMultiplier = seriesBonusMultiplier
	}

	researchMultiplier := 1 << researchStacks

	adaptationMultiplier := 1.0
	for range boss.AdaptationLevel {
		adaptationMultiplier *= adaptationDamageMultiplier
	}

	final := int64(basePower * affinityMultiplier * seriesMultiplier *
		float64(researchMultiplier) * adaptationMultiplier)

	return PointsBreakdown{
		BasePower:            basePower,
		TotalBuffCount:       totalBuffCount,
		AffinityMultiplier:   affinityMultiplier,
		SeriesMultiplier:     seriesMultiplier,
		ResearchMultiplier:   researchMultiplier,
		AdaptationMultiplier: adaptationMultiplier,
		FinalPoints:          final,
	}
}

// countBuffMatches counts at most one match per affinity category against
// the boss's buff set, capped at maxBuffMatchesPerCharacter.
func countBuffMatches(c *model.Character, boss *model.Boss) int {
	count := 0

	for _, e := range c.ElementalTypes {
		if boss.Buffs.Contains(model.AffinityElemental, e) {
			count++
			break
		}
	}
	if boss.Buffs.Contains(model.AffinityArchetype, c.Archetype) {
		count++
	}
	if boss.Buffs.Contains(model.AffinitySeries, c.SeriesKey()) {
		count++
	}
	for _, g := range c.Genres {
		if boss.Buffs.Contains(model.AffinityGenre, g) {
			count++
			break
		}
	}

	return min(count, maxBuffMatchesPerCharacter)
}
