package render

import (
	"encoding/json"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

// JSONOption configures JSON rendering via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	skipCells bool
	seed      uint64
	seedSet   bool
}

// WithoutCells omits the excavated cell list, leaving only the decoded
// attributes. Useful for listings where the full map is not needed.
func WithoutCells() JSONOption {
	return func(r *jsonRenderer) { r.skipCells = true }
}

// WithJSONSeed records the scatter seed in the output, enabling byte-identical
// regeneration of the same dungeon.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.seedSet = true }
}

type jsonOutput struct {
	Token     string          `json:"token"`
	Seed      *uint64         `json:"seed,omitempty"`
	RoomCount int             `json:"room_count"`
	Rooms     []jsonRoom      `json:"rooms"`
	Bounds    dungeon.Bounds  `json:"bounds"`
	Area      int             `json:"area"`
	Frequency map[string]int  `json:"frequency,omitempty"`
	Dominant  string          `json:"dominant,omitempty"`
	Type      string          `json:"type"`
	Level     int             `json:"level"`
	Excavated []dungeon.Point `json:"excavated,omitempty"`
}

type jsonRoom struct {
	Center dungeon.Point `json:"center"`
	Size   int           `json:"size"`
	Shape  string        `json:"shape"`
}

// JSON renders the full dungeon record as a pretty-printed document. Cell
// order is deterministic (sorted by Y then X) so identical dungeons produce
// identical bytes.
func JSON(d *dungeon.Dungeon, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Token:     d.Token,
		RoomCount: d.RoomCount,
		Rooms:     make([]jsonRoom, d.RoomCount),
		Bounds:    d.Bounds,
		Area:      d.Area,
		Type:      d.Type,
		Level:     d.Level,
	}
	for i := 0; i < d.RoomCount; i++ {
		out.Rooms[i] = jsonRoom{
			Center: d.Centers[i],
			Size:   d.Sizes[i],
			Shape:  string(rune(d.Shapes[i])),
		}
	}
	if r.seedSet {
		out.Seed = &r.seed
	}
	if len(d.Frequency) > 0 {
		out.Frequency = make(map[string]int, len(d.Frequency))
		for c, n := range d.Frequency {
			out.Frequency[string(rune(c))] = n
		}
	}
	if d.Dominant != 0 {
		out.Dominant = string(rune(d.Dominant))
	}
	if !r.skipCells {
		out.Excavated = d.Excavated.Points()
	}

	return json.MarshalIndent(out, "", "  ")
}
