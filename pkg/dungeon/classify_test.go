package dungeon

import "testing"

func TestBiomeFor(t *testing.T) {
	tests := []struct {
		dominant byte
		want     string
	}{
		{'a', "Ancient Ruins"},
		{'h', "Hell"},
		{'z', "Zephyr Highlands"},
		{'0', UnknownBiome},
		{'A', UnknownBiome}, // dominant is always lowercase or zero
		{0, UnknownBiome},
	}
	for _, tt := range tests {
		if got := BiomeFor(tt.dominant); got != tt.want {
			t.Errorf("BiomeFor(%q) = %q, want %q", tt.dominant, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		area int
		want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.area); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.area, got, tt.want)
		}
	}
}
