package model

import (
	"slices"
	"time"
)

// MaxResearchStacks caps the player-held research multiplier counter.
const MaxResearchStacks = 2

// PlayerStatus is a player's World Threat progress record. Created lazily
// with zero values on first access, mutated only by that player's own
// actions, never deleted.
type PlayerStatus struct {
	PlayerID         string
	CumulativePoints int64
	LastActionAt     *time.Time // nil until the first successful action
	ResearchStacks   int        // 0..MaxResearchStacks

	// Append-only sets of checkpoint thresholds already granted.
	ClaimedPersonalCheckpoints []int64
	ClaimedServerCheckpoints   []int64
}

// HasClaimedPersonal reports whether the personal checkpoint was already granted.
func (p *PlayerStatus) HasClaimedPersonal(checkpoint int64) bool {
	return slices.Contains(p.ClaimedPersonalCheckpoints, checkpoint)
}

// HasClaimedServer reports whether the server checkpoint was already granted.
func (p *PlayerStatus) HasClaimedServer(checkpoint int64) bool {
	return slices.Contains(p.ClaimedServerCheckpoints, checkpoint)
}

// ResearchMultiplier returns the fight multiplier for the current stacks:
// 2^stacks, so 0/1/2 stacks give x1/x2/x4.
func (p *PlayerStatus) ResearchMultiplier() int {
	return 1 << p.ResearchStacks
}
