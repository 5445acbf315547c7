package render

import (
	"bytes"
	"fmt"

	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/grid"
)

// SVGOption configures SVG rendering via [SVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize    int
	markCenters bool
}

// WithCellSize sets the rendered size of one grid cell in pixels (default 8).
func WithCellSize(px int) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.cellSize = px
		}
	}
}

// WithCenterMarkers draws a marker on each room center.
func WithCenterMarkers() SVGOption {
	return func(r *svgRenderer) { r.markCenters = true }
}

const (
	svgBackground = "#1b1b20"
	svgCell       = "#d8a33b"
	svgCenter     = "#c0392b"
)

// SVG renders the dungeon map as a vector image: one square per excavated
// cell over the tight extent of the excavated set, highest Y at the top.
func SVG(d *dungeon.Dungeon, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: 8}
	for _, opt := range opts {
		opt(&r)
	}

	extent := grid.Extent(d.Excavated)
	width := extent.Width() * r.cellSize
	height := extent.Height() * r.cellSize

	// Grid Y grows upward, SVG Y grows downward.
	cellX := func(x int) int { return (x - extent.MinX) * r.cellSize }
	cellY := func(y int) int { return (extent.MaxY - y) * r.cellSize }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", width, height, svgBackground)

	for _, p := range d.Excavated.Points() {
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			cellX(p.X), cellY(p.Y), r.cellSize, r.cellSize, svgCell)
	}

	if r.markCenters {
		radius := r.cellSize / 2
		for _, c := range d.Centers {
			fmt.Fprintf(&buf, `  <circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n",
				cellX(c.X)+radius, cellY(c.Y)+radius, radius, svgCenter)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
