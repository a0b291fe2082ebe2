package threat

import (
	"context"
	"fmt"

	"github.com/wanderergame/worldthreat/internal/model"
)

// IsCursed reports whether any of the character's affinities is forbidden by
// the boss's current curse set.
func IsCursed(c *model.Character, boss *model.Boss) bool {
	for _, e := range c.ElementalTypes {
		if boss.Curses.Contains(model.AffinityElemental, e) {
			return true
		}
	}
	if boss.Curses.Contains(model.AffinityArchetype, c.Archetype) {
		return true
	}
	if boss.Curses.Contains(model.AffinitySeries, c.SeriesKey()) {
		return true
	}
	for _, g := range c.Genres {
		if boss.Curses.Contains(model.AffinityGenre, g) {
			return true
		}
	}
	return false
}

// CharacterSummary describes one usable character from a player's
// collection, joined with its catalog attributes.
type CharacterSummary struct {
	CharacterID    int64
	Name           string
	Series         string
	SeriesID       int64
	StarLevel      int
	Awakened       bool
	Stats          model.CharacterStats
	ElementalTypes []string
	Archetype      string
	Genres         []string
}

// AvailableCharacters returns the player's owned characters that are not
// cursed under the current boss state. Collection rows whose catalog entry
// is missing are skipped.
func (s *Service) AvailableCharacters(ctx context.Context, playerID string) ([]CharacterSummary, error) {
	boss, _, err := s.boss.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading boss: %w", err)
	}
	if boss == nil {
		return nil, ErrNoActiveBoss
	}

	owned, err := s.collection.GetCollection(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("loading collection for %s: %w", playerID, err)
	}

	available := make([]CharacterSummary, 0, len(owned))
	for _, row := range owned {
		c := s.catalog.Character(row.CharacterID)
		if c == nil {
			continue
		}
		if IsCursed(c, boss) {
			continue
		}
		available = append(available, CharacterSummary{
			CharacterID:    c.ID,
			Name:           c.Name,
			Series:         c.Series,
			SeriesID:       c.SeriesID,
			StarLevel:      row.StarLevel,
			Awakened:       row.Awakened,
			Stats:          c.Stats,
			ElementalTypes: c.ElementalTypes,
			Archetype:      c.Archetype,
			Genres:         c.Genres,
		})
	}
	return available, nil
}
