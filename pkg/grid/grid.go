// Package grid rasterizes an excavated coordinate set into a bounded cell
// grid for text and image rendering. The grid is a plain value: renderers
// read it, nothing mutates it after construction.
package grid

import (
	"strings"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

// Map symbols, matching the classic text output: '@' for untouched ground,
// 'O' for an excavated cell.
const (
	SymbolEmpty     = '@'
	SymbolExcavated = 'O'
)

// Grid is a rasterized view of an excavated set.
type Grid struct {
	// Bounds is the inclusive coordinate extent the grid covers.
	Bounds dungeon.Bounds

	cells []bool
}

// New rasterizes set over the given bounds. Cells outside the bounds are
// dropped; callers that want everything visible should pass Extent(set).
func New(set dungeon.PointSet, b dungeon.Bounds) *Grid {
	g := &Grid{
		Bounds: b,
		cells:  make([]bool, b.Width()*b.Height()),
	}
	for p := range set {
		if b.Contains(p) {
			g.cells[g.index(p)] = true
		}
	}
	return g
}

// Extent computes the tight inclusive bounding box of set. An empty set
// yields the zero box around the origin.
func Extent(set dungeon.PointSet) dungeon.Bounds {
	var b dungeon.Bounds
	first := true
	for p := range set {
		if first {
			b = dungeon.Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
			first = false
			continue
		}
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// Excavated reports whether the cell at (x, y) is excavated. Coordinates
// outside the bounds read as empty.
func (g *Grid) Excavated(x, y int) bool {
	p := dungeon.Point{X: x, Y: y}
	if !g.Bounds.Contains(p) {
		return false
	}
	return g.cells[g.index(p)]
}

// Rows returns the grid as display strings, top row first (highest Y).
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.Bounds.Height())
	var sb strings.Builder
	for y := g.Bounds.MaxY; y >= g.Bounds.MinY; y-- {
		sb.Reset()
		sb.Grow(g.Bounds.Width())
		for x := g.Bounds.MinX; x <= g.Bounds.MaxX; x++ {
			if g.Excavated(x, y) {
				sb.WriteRune(SymbolExcavated)
			} else {
				sb.WriteRune(SymbolEmpty)
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String renders the grid as a newline-joined block.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

func (g *Grid) index(p dungeon.Point) int {
	return (p.Y-g.Bounds.MinY)*g.Bounds.Width() + (p.X - g.Bounds.MinX)
}
