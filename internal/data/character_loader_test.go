package data

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderergame/worldthreat/internal/model"
)

func TestLoadCharacters(t *testing.T) {
	require.NoError(t, LoadCharacters())
	require.Len(t, CharacterTable, len(characterDefs))

	c := GetCharacter(1001)
	require.NotNil(t, c)
	assert.Equal(t, "Ayame Kurogane", c.Name)
	assert.Equal(t, int64(7), c.SeriesID)

	assert.Nil(t, GetCharacter(424242))
	assert.Len(t, AllCharacters(), len(characterDefs))
}

// TestCatalogIntegrity verifies every built-in character only carries
// affinity values the evolution pools can draw, so buffs and curses can in
// principle reach every character.
func TestCatalogIntegrity(t *testing.T) {
	require.NoError(t, LoadCharacters())

	for _, c := range AllCharacters() {
		assert.NotEmpty(t, c.ElementalTypes, "character %d has no elemental types", c.ID)
		for _, e := range c.ElementalTypes {
			assert.True(t, slices.Contains(elementalPool, e),
				"character %d: elemental %q not in pool", c.ID, e)
		}
		assert.True(t, slices.Contains(archetypePool, c.Archetype),
			"character %d: archetype %q not in pool", c.ID, c.Archetype)
		assert.NotEmpty(t, c.Genres, "character %d has no genres", c.ID)
		for _, g := range c.Genres {
			assert.True(t, slices.Contains(genrePool, g),
				"character %d: genre %q not in pool", c.ID, g)
		}
	}
}

func TestAffinityPools(t *testing.T) {
	require.NoError(t, LoadCharacters())

	pools := AffinityPools()

	for _, cat := range model.AffinityCategories {
		assert.NotEmpty(t, pools[cat], "empty pool for category %s", cat)
	}

	// Series pool is derived from the catalog: one key per distinct series,
	// sorted lexicographically.
	assert.Equal(t, []string{"12", "23", "31", "7"}, pools[model.AffinitySeries])
}
