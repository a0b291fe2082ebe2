package threat

import (
	"context"
	"errors"
	"testing"

	"github.com/wanderergame/worldthreat/internal/model"
)

func TestIsCursed(t *testing.T) {
	t.Parallel()

	// testChar is fire / warrior / action in series 7.
	c := testChar(1, 7, 100)

	tests := []struct {
		name   string
		curses model.AffinityMap
		want   bool
	}{
		{"no curses", model.AffinityMap{}, false},
		{"elemental match", model.AffinityMap{model.AffinityElemental: {"fire"}}, true},
		{"archetype match", model.AffinityMap{model.AffinityArchetype: {"warrior"}}, true},
		{"series match", model.AffinityMap{model.AffinitySeries: {"7"}}, true},
		{"genre match", model.AffinityMap{model.AffinityGenre: {"action"}}, true},
		{"non-matching values", model.AffinityMap{
			model.AffinityElemental: {"water"},
			model.AffinityArchetype: {"mage"},
			model.AffinitySeries:    {"12"},
			model.AffinityGenre:     {"drama"},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			boss := testBoss()
			boss.Curses = tt.curses
			if got := IsCursed(c, boss); got != tt.want {
				t.Errorf("IsCursed = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableCharacters_FiltersCursed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	// Catalog ids 1..6 are series 7, ids 7..8 are series 12. Cursing series 7
	// leaves only the two series-12 characters usable.
	env.boss.boss.Curses = model.AffinityMap{
		model.AffinitySeries: {"7"},
	}
	env.collection.owned["p1"] = []model.OwnedCharacter{
		{CharacterID: 1, StarLevel: 2},
		{CharacterID: 2, StarLevel: 1},
		{CharacterID: 7, StarLevel: 3, Awakened: true},
		{CharacterID: 8, StarLevel: 1},
		{CharacterID: 9999, StarLevel: 1}, // no catalog entry, skipped
	}

	got, err := env.svc.AvailableCharacters(ctx, "p1")
	if err != nil {
		t.Fatalf("AvailableCharacters: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d; want 2 (%+v)", len(got), got)
	}
	if got[0].CharacterID != 7 || got[1].CharacterID != 8 {
		t.Errorf("ids = %d, %d; want 7, 8", got[0].CharacterID, got[1].CharacterID)
	}
	if got[0].StarLevel != 3 || !got[0].Awakened {
		t.Errorf("collection attributes not carried: %+v", got[0])
	}
}

func TestAvailableCharacters_NoBoss(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.boss.boss = nil

	if _, err := env.svc.AvailableCharacters(context.Background(), "p1"); !errors.Is(err, ErrNoActiveBoss) {
		t.Fatalf("err = %v; want ErrNoActiveBoss", err)
	}
}

func TestAvailableCharacters_EmptyCollection(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	got, err := env.svc.AvailableCharacters(context.Background(), "p1")
	if err != nil {
		t.Fatalf("AvailableCharacters: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d; want 0", len(got))
	}
}
