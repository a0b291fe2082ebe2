package model

import "fmt"

// StatTag identifies one of the seven combat stats.
type StatTag string

const (
	StatAtk StatTag = "atk"
	StatMag StatTag = "mag"
	StatVit StatTag = "vit"
	StatSpr StatTag = "spr"
	StatInt StatTag = "int"
	StatSpd StatTag = "spd"
	StatLck StatTag = "lck"
)

// AllStats is the full stat pool the boss rolls dominant/cursed stats from.
var AllStats = []StatTag{StatAtk, StatMag, StatVit, StatSpr, StatInt, StatSpd, StatLck}

// AffinityCategory identifies one of the four affinity categories.
type AffinityCategory string

const (
	AffinityElemental AffinityCategory = "elemental"
	AffinityArchetype AffinityCategory = "archetype"
	AffinityGenre     AffinityCategory = "genre"
	AffinitySeries    AffinityCategory = "series"
)

// AffinityCategories lists all categories. Weighted selection in the
// evolution engine iterates this slice so no enumeration order is baked
// into the weights themselves.
var AffinityCategories = []AffinityCategory{
	AffinityElemental,
	AffinityArchetype,
	AffinityGenre,
	AffinitySeries,
}

// AffinityMap holds the boss's buffed or cursed affinity values per category.
type AffinityMap map[AffinityCategory][]string

// Total returns the number of entries across all categories.
func (m AffinityMap) Total() int {
	n := 0
	for _, values := range m {
		n += len(values)
	}
	return n
}

// Contains reports whether value is present in the given category.
func (m AffinityMap) Contains(cat AffinityCategory, value string) bool {
	for _, v := range m[cat] {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the map.
func (m AffinityMap) Clone() AffinityMap {
	out := make(AffinityMap, len(m))
	for cat, values := range m {
		cp := make([]string, len(values))
		copy(cp, values)
		out[cat] = cp
	}
	return out
}

// Boss is the single shared adversary record. One row exists server-wide;
// every Research and Fight action reads and rewrites it, so all writes go
// through BossRepository's versioned compare-and-swap.
type Boss struct {
	Name                 string
	DominantStats        []StatTag // exactly 2, distinct
	CursedStat           StatTag   // never in DominantStats
	Buffs                AffinityMap
	Curses               AffinityMap
	BuffCap              int
	CurseCap             int
	ServerTotalPoints    int64
	TotalResearchActions int64
	AdaptationLevel      int // 0..2, ratchets up via research thresholds
}

// Validate checks the structural invariants of the boss record.
func (b *Boss) Validate() error {
	if len(b.DominantStats) != 2 {
		return fmt.Errorf("boss has %d dominant stats, want 2", len(b.DominantStats))
	}
	if b.DominantStats[0] == b.DominantStats[1] {
		return fmt.Errorf("duplicate dominant stat %q", b.DominantStats[0])
	}
	for _, s := range b.DominantStats {
		if s == b.CursedStat {
			return fmt.Errorf("cursed stat %q overlaps dominant stats", b.CursedStat)
		}
	}
	if n := b.Buffs.Total(); n > b.BuffCap {
		return fmt.Errorf("buff count %d exceeds cap %d", n, b.BuffCap)
	}
	if n := b.Curses.Total(); n > b.CurseCap {
		return fmt.Errorf("curse count %d exceeds cap %d", n, b.CurseCap)
	}
	if b.AdaptationLevel < 0 || b.AdaptationLevel > 2 {
		return fmt.Errorf("adaptation level %d out of range [0,2]", b.AdaptationLevel)
	}
	return nil
}

// HasDominantStat reports whether tag is one of the boss's dominant stats.
func (b *Boss) HasDominantStat(tag StatTag) bool {
	for _, s := range b.DominantStats {
		if s == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, used by the action retry loop so a failed
// compare-and-swap never leaks partial mutations into the next attempt.
func (b *Boss) Clone() *Boss {
	cp := *b
	cp.DominantStats = append([]StatTag(nil), b.DominantStats...)
	cp.Buffs = b.Buffs.Clone()
	cp.Curses = b.Curses.Clone()
	return &cp
}
