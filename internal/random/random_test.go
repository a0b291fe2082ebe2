package random

import (
	"math/rand/v2"
	"testing"
)

func TestNewSeed(t *testing.T) {
	t.Parallel()

	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Errorf("two seeds are identical: %d", a)
	}
}

func TestPickWeighted_SingleChoice(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	choices := []Weighted[string]{{Item: "only", Weight: 5}}

	for range 10 {
		got, ok := PickWeighted(rng, choices)
		if !ok {
			t.Fatal("PickWeighted returned false with positive weight")
		}
		if got != "only" {
			t.Errorf("PickWeighted = %q; want %q", got, "only")
		}
	}
}

func TestPickWeighted_ZeroWeightNeverSelected(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	choices := []Weighted[string]{
		{Item: "never", Weight: 0},
		{Item: "always", Weight: 1},
	}

	for range 100 {
		got, ok := PickWeighted(rng, choices)
		if !ok {
			t.Fatal("PickWeighted returned false")
		}
		if got == "never" {
			t.Fatal("zero-weight item was selected")
		}
	}
}

func TestPickWeighted_NoPositiveWeight(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	choices := []Weighted[int]{{Item: 1, Weight: 0}, {Item: 2, Weight: -3}}

	if _, ok := PickWeighted(rng, choices); ok {
		t.Error("PickWeighted = true; want false when all weights are non-positive")
	}
}

func TestPickWeighted_RoughProportions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 8))
	choices := []Weighted[string]{
		{Item: "heavy", Weight: 9},
		{Item: "light", Weight: 1},
	}

	counts := map[string]int{}
	const n = 10000
	for range n {
		got, ok := PickWeighted(rng, choices)
		if !ok {
			t.Fatal("PickWeighted returned false")
		}
		counts[got]++
	}

	// Expect ~90/10 split; allow generous slack.
	if counts["heavy"] < 8500 || counts["heavy"] > 9500 {
		t.Errorf("heavy selected %d/%d times; want roughly 9000", counts["heavy"], n)
	}
	if counts["light"] == 0 {
		t.Error("light never selected")
	}
}
