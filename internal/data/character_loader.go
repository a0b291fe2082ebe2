package data

import (
	"fmt"
	"log/slog"

	"github.com/wanderergame/worldthreat/internal/model"
)

// CharacterTable is the global registry of catalog characters.
// map[characterID]*model.Character
var CharacterTable map[int64]*model.Character

// LoadCharacters builds CharacterTable from the built-in characterDefs.
func LoadCharacters() error {
	CharacterTable = make(map[int64]*model.Character, len(characterDefs))

	for i := range characterDefs {
		c := &characterDefs[i]
		if _, dup := CharacterTable[c.ID]; dup {
			return fmt.Errorf("duplicate character id %d", c.ID)
		}
		CharacterTable[c.ID] = c
	}

	slog.Info("loaded character catalog", "count", len(CharacterTable))
	return nil
}

// GetCharacter returns the catalog character by id, or nil if unknown.
func GetCharacter(id int64) *model.Character {
	if CharacterTable == nil {
		return nil
	}
	return CharacterTable[id]
}

// AllCharacters returns every catalog character in unspecified order.
func AllCharacters() []*model.Character {
	if CharacterTable == nil {
		return nil
	}
	out := make([]*model.Character, 0, len(CharacterTable))
	for _, c := range CharacterTable {
		out = append(out, c)
	}
	return out
}
