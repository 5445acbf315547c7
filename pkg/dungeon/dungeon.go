package dungeon

import (
	"math/rand"
	"sort"
)

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds is an inclusive bounding box over grid coordinates.
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// Width returns the number of columns covered by the box.
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered by the box.
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// Cells returns the total number of grid cells inside the box.
func (b Bounds) Cells() int { return b.Width() * b.Height() }

// Contains reports whether p lies inside the box (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// PointSet is a deduplicated set of grid coordinates.
type PointSet map[Point]struct{}

// Add inserts p into the set.
func (s PointSet) Add(p Point) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Points returns the set contents as a slice sorted by (Y, X).
// The ordering is deterministic so renderers and tests do not depend on map
// iteration order.
func (s PointSet) Points() []Point {
	pts := make([]Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// Dungeon is the assembled generation record. It is constructed once per
// Generate call and must be treated as immutable afterwards.
type Dungeon struct {
	// Token is the input identifier the dungeon was derived from.
	Token string

	// RoomCount is the number of structural rooms.
	RoomCount int

	// Centers holds one center per room, in decode order. The order is
	// significant: tunnels pair consecutive entries.
	Centers []Point

	// Sizes holds one expansion radius per room.
	Sizes []int

	// Shapes holds the raw shape character per room. Lookups fold case.
	Shapes []byte

	// Bounds is the min/max extent of the room centers, padded by one cell
	// on each side. Expanded room cells may fall outside it.
	Bounds Bounds

	// Area is the summed square area over all rooms: Σ (2·size+1)².
	Area int

	// Frequency counts each lowercase letter across the whole token.
	// Digits and uppercase letters do not contribute.
	Frequency map[byte]int

	// Dominant is the most frequent lowercase letter, ties broken by first
	// occurrence in the token. Zero when the token has no lowercase letters.
	Dominant byte

	// Type is the biome name keyed by Dominant.
	Type string

	// Level is the numeric tier derived from Area.
	Level int

	// Excavated is the union of all room cells, tunnel cells, and scattered
	// cells, deduplicated.
	Excavated PointSet
}

// Generate runs the full decode → excavate → tunnel → scatter → classify
// pipeline. rng feeds only the scatter stage; passing a source with a fixed
// seed makes the whole result reproducible. A nil rng disables scatter.
//
// On failure no partial record is returned.
func Generate(token string, rng *rand.Rand) (*Dungeon, error) {
	d, err := Decode(token)
	if err != nil {
		return nil, err
	}

	excavated := make(PointSet)
	for i := 0; i < d.RoomCount; i++ {
		center := d.Centers[i]
		for _, off := range ExpandShape(d.Shapes[i], d.Sizes[i]) {
			excavated.Add(Point{X: center.X + off.X, Y: center.Y + off.Y})
		}
	}

	for _, tunnel := range Tunnels(d.Centers) {
		for _, p := range tunnel {
			excavated.Add(p)
		}
	}

	if rng != nil {
		if err := Scatter(rng, excavated, d.Bounds, d.Area/scatterDivisor); err != nil {
			return nil, err
		}
	}

	d.Excavated = excavated
	return d, nil
}

// scatterDivisor converts total room area into the scatter cell budget.
const scatterDivisor = 50
