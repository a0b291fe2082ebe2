package model

import "strconv"

// CharacterStats holds the seven base combat stats of a catalog character.
type CharacterStats struct {
	Atk int
	Mag int
	Vit int
	Spr int
	Int int
	Spd int
	Lck int
}

// Value returns the stat value for the given tag. Unknown tags yield 0.
func (s CharacterStats) Value(tag StatTag) int {
	switch tag {
	case StatAtk:
		return s.Atk
	case StatMag:
		return s.Mag
	case StatVit:
		return s.Vit
	case StatSpr:
		return s.Spr
	case StatInt:
		return s.Int
	case StatSpd:
		return s.Spd
	case StatLck:
		return s.Lck
	default:
		return 0
	}
}

// Character is an immutable catalog entry resolved from an opaque id.
type Character struct {
	ID             int64
	Name           string
	Series         string
	SeriesID       int64
	Stats          CharacterStats
	ElementalTypes []string
	Archetype      string
	Genres         []string
}

// SeriesKey returns the series id as the string used in affinity maps.
func (c *Character) SeriesKey() string {
	return strconv.FormatInt(c.SeriesID, 10)
}

// HasElementalType reports whether the character carries the elemental type.
func (c *Character) HasElementalType(t string) bool {
	for _, e := range c.ElementalTypes {
		if e == t {
			return true
		}
	}
	return false
}

// HasGenre reports whether the character's source anime carries the genre.
func (c *Character) HasGenre(g string) bool {
	for _, genre := range c.Genres {
		if genre == g {
			return true
		}
	}
	return false
}

// OwnedCharacter is a row from a player's collection, as reported by the
// external collection service.
type OwnedCharacter struct {
	CharacterID int64
	StarLevel   int
	Awakened    bool
}

// TeamMember is one ephemeral fight-team entry supplied by the caller.
// StarLevel is trusted as-is.
type TeamMember struct {
	CharacterID int64
	StarLevel   int
}

// TeamSize is the required fight team size.
const TeamSize = 6
