package dungeon

// biomes maps each lowercase letter to its biome name.
var biomes = [26]string{
	"Ancient Ruins",
	"Barrens",
	"Cave",
	"Desert",
	"Enchanted Forest",
	"Forest",
	"Grassland",
	"Hell",
	"Ice Cavern",
	"Jungle",
	"Kingdom Ruins",
	"Lava Pits",
	"Mountain",
	"Necropolis",
	"Ocean Depths",
	"Poison Swamp",
	"Quagmire",
	"Rainforest",
	"Swamp",
	"Temple",
	"Underground Tunnels",
	"Volcanic Crater",
	"Water",
	"Xeno Hive",
	"Yellow Wasteland",
	"Zephyr Highlands",
}

// UnknownBiome is the fallback biome name for tokens without a dominant
// lowercase letter.
const UnknownBiome = "Unknown"

// BiomeFor returns the biome name for a dominant character. Any byte outside
// 'a'–'z' yields UnknownBiome.
func BiomeFor(dominant byte) string {
	if dominant < 'a' || dominant > 'z' {
		return UnknownBiome
	}
	return biomes[dominant-'a']
}

// LevelFor derives the numeric dungeon tier from the total room area: one
// tier per 1000 area units, starting at 1.
func LevelFor(area int) int {
	return area/1000 + 1
}
