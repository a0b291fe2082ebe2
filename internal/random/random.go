// Package random provides seed generation and weighted random selection
// helpers used by the boss evolution engine.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random 64-bit seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Weighted pairs an item with its selection weight.
type Weighted[T any] struct {
	Item   T
	Weight int
}

// PickWeighted selects one item with probability proportional to its weight.
// Entries with non-positive weight are never selected. Returns false when no
// entry has positive weight.
func PickWeighted[T any](rng *rand.Rand, choices []Weighted[T]) (T, bool) {
	var zero T

	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return zero, false
	}

	roll := rng.IntN(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if roll < c.Weight {
			return c.Item, true
		}
		roll -= c.Weight
	}
	return zero, false // unreachable
}
