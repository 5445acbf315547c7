package pipeline

import (
	"encoding/json"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

// recordEnvelope is the cache wire form of a dungeon record. The excavated
// set is flattened to a sorted slice because map keys of struct type do not
// survive JSON.
type recordEnvelope struct {
	Token     string          `json:"token"`
	RoomCount int             `json:"room_count"`
	Centers   []dungeon.Point `json:"centers"`
	Sizes     []int           `json:"sizes"`
	Shapes    string          `json:"shapes"`
	Bounds    dungeon.Bounds  `json:"bounds"`
	Area      int             `json:"area"`
	Frequency map[byte]int    `json:"frequency"`
	Dominant  byte            `json:"dominant"`
	Type      string          `json:"type"`
	Level     int             `json:"level"`
	Excavated []dungeon.Point `json:"excavated"`
}

// marshalRecord serializes a dungeon record for caching.
func marshalRecord(d *dungeon.Dungeon) ([]byte, error) {
	return json.Marshal(recordEnvelope{
		Token:     d.Token,
		RoomCount: d.RoomCount,
		Centers:   d.Centers,
		Sizes:     d.Sizes,
		Shapes:    string(d.Shapes),
		Bounds:    d.Bounds,
		Area:      d.Area,
		Frequency: d.Frequency,
		Dominant:  d.Dominant,
		Type:      d.Type,
		Level:     d.Level,
		Excavated: d.Excavated.Points(),
	})
}

// unmarshalRecord restores a cached dungeon record.
func unmarshalRecord(data []byte) (*dungeon.Dungeon, error) {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	set := make(dungeon.PointSet, len(env.Excavated))
	for _, p := range env.Excavated {
		set.Add(p)
	}

	return &dungeon.Dungeon{
		Token:     env.Token,
		RoomCount: env.RoomCount,
		Centers:   env.Centers,
		Sizes:     env.Sizes,
		Shapes:    []byte(env.Shapes),
		Bounds:    env.Bounds,
		Area:      env.Area,
		Frequency: env.Frequency,
		Dominant:  env.Dominant,
		Type:      env.Type,
		Level:     env.Level,
		Excavated: set,
	}, nil
}
