package data

import "github.com/wanderergame/worldthreat/internal/model"

// characterDefs is the built-in character catalog. In production this table
// is regenerated from the collection service's export; the shape matches
// model.Character one-to-one.
var characterDefs = []model.Character{
	// Series 7: Blade of the Dawn
	{
		ID: 1001, Name: "Ayame Kurogane", Series: "Blade of the Dawn", SeriesID: 7,
		Stats:          model.CharacterStats{Atk: 120, Mag: 40, Vit: 85, Spr: 50, Int: 60, Spd: 110, Lck: 45},
		ElementalTypes: []string{"fire"}, Archetype: "warrior",
		Genres: []string{"action", "fantasy"},
	},
	{
		ID: 1002, Name: "Renji Hayakawa", Series: "Blade of the Dawn", SeriesID: 7,
		Stats:          model.CharacterStats{Atk: 95, Mag: 30, Vit: 130, Spr: 70, Int: 40, Spd: 60, Lck: 50},
		ElementalTypes: []string{"earth"}, Archetype: "tank",
		Genres: []string{"action", "fantasy"},
	},
	{
		ID: 1003, Name: "Shiori Amasawa", Series: "Blade of the Dawn", SeriesID: 7,
		Stats:          model.CharacterStats{Atk: 45, Mag: 125, Vit: 55, Spr: 95, Int: 115, Spd: 70, Lck: 55},
		ElementalTypes: []string{"light"}, Archetype: "healer",
		Genres: []string{"action", "fantasy"},
	},
	{
		ID: 1004, Name: "Kaito Yoruzora", Series: "Blade of the Dawn", SeriesID: 7,
		Stats:          model.CharacterStats{Atk: 110, Mag: 55, Vit: 60, Spr: 45, Int: 75, Spd: 135, Lck: 80},
		ElementalTypes: []string{"dark", "wind"}, Archetype: "assassin",
		Genres: []string{"action", "fantasy"},
	},

	// Series 12: Starfall Academy
	{
		ID: 1101, Name: "Mirai Hoshino", Series: "Starfall Academy", SeriesID: 12,
		Stats:          model.CharacterStats{Atk: 50, Mag: 140, Vit: 50, Spr: 85, Int: 130, Spd: 65, Lck: 60},
		ElementalTypes: []string{"thunder"}, Archetype: "mage",
		Genres: []string{"sci-fi", "comedy"},
	},
	{
		ID: 1102, Name: "Sora Takachiho", Series: "Starfall Academy", SeriesID: 12,
		Stats:          model.CharacterStats{Atk: 105, Mag: 60, Vit: 75, Spr: 55, Int: 70, Spd: 100, Lck: 65},
		ElementalTypes: []string{"wind"}, Archetype: "archer",
		Genres: []string{"sci-fi", "comedy"},
	},
	{
		ID: 1103, Name: "Nanami Orihara", Series: "Starfall Academy", SeriesID: 12,
		Stats:          model.CharacterStats{Atk: 40, Mag: 110, Vit: 65, Spr: 120, Int: 95, Spd: 55, Lck: 70},
		ElementalTypes: []string{"water"}, Archetype: "support",
		Genres: []string{"sci-fi", "comedy"},
	},
	{
		ID: 1104, Name: "Goro Benimaru", Series: "Starfall Academy", SeriesID: 12,
		Stats:          model.CharacterStats{Atk: 130, Mag: 35, Vit: 105, Spr: 45, Int: 50, Spd: 75, Lck: 40},
		ElementalTypes: []string{"fire", "earth"}, Archetype: "warrior",
		Genres: []string{"sci-fi", "action"},
	},

	// Series 23: Chronicle of Embers
	{
		ID: 1201, Name: "Elise Varnhelm", Series: "Chronicle of Embers", SeriesID: 23,
		Stats:          model.CharacterStats{Atk: 85, Mag: 95, Vit: 70, Spr: 75, Int: 90, Spd: 85, Lck: 55},
		ElementalTypes: []string{"fire", "dark"}, Archetype: "trickster",
		Genres: []string{"drama", "supernatural"},
	},
	{
		ID: 1202, Name: "Ignis Draven", Series: "Chronicle of Embers", SeriesID: 23,
		Stats:          model.CharacterStats{Atk: 145, Mag: 50, Vit: 90, Spr: 40, Int: 45, Spd: 80, Lck: 35},
		ElementalTypes: []string{"fire"}, Archetype: "warrior",
		Genres: []string{"drama", "supernatural"},
	},
	{
		ID: 1203, Name: "Lumen Caskett", Series: "Chronicle of Embers", SeriesID: 23,
		Stats:          model.CharacterStats{Atk: 35, Mag: 120, Vit: 60, Spr: 110, Int: 105, Spd: 50, Lck: 75},
		ElementalTypes: []string{"light", "ice"}, Archetype: "healer",
		Genres: []string{"drama", "supernatural"},
	},
	{
		ID: 1204, Name: "Vesper Nocturne", Series: "Chronicle of Embers", SeriesID: 23,
		Stats:          model.CharacterStats{Atk: 100, Mag: 85, Vit: 55, Spr: 60, Int: 80, Spd: 120, Lck: 90},
		ElementalTypes: []string{"dark"}, Archetype: "assassin",
		Genres: []string{"drama", "action"},
	},

	// Series 31: Moonlit Cafe
	{
		ID: 1301, Name: "Hinata Tsukishiro", Series: "Moonlit Cafe", SeriesID: 31,
		Stats:          model.CharacterStats{Atk: 55, Mag: 75, Vit: 80, Spr: 100, Int: 85, Spd: 65, Lck: 110},
		ElementalTypes: []string{"water"}, Archetype: "support",
		Genres: []string{"slice_of_life", "romance"},
	},
	{
		ID: 1302, Name: "Chiaki Amano", Series: "Moonlit Cafe", SeriesID: 31,
		Stats:          model.CharacterStats{Atk: 70, Mag: 65, Vit: 95, Spr: 80, Int: 60, Spd: 70, Lck: 95},
		ElementalTypes: []string{"earth"}, Archetype: "tank",
		Genres: []string{"slice_of_life", "romance"},
	},
	{
		ID: 1303, Name: "Yuki Shirahane", Series: "Moonlit Cafe", SeriesID: 31,
		Stats:          model.CharacterStats{Atk: 45, Mag: 105, Vit: 55, Spr: 90, Int: 100, Spd: 75, Lck: 85},
		ElementalTypes: []string{"ice"}, Archetype: "mage",
		Genres: []string{"slice_of_life", "comedy"},
	},
	{
		ID: 1304, Name: "Rin Katsuragi", Series: "Moonlit Cafe", SeriesID: 31,
		Stats:          model.CharacterStats{Atk: 115, Mag: 45, Vit: 70, Spr: 50, Int: 65, Spd: 105, Lck: 70},
		ElementalTypes: []string{"thunder"}, Archetype: "archer",
		Genres: []string{"slice_of_life", "action"},
	},
}
