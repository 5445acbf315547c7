package render

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/grid"
)

// PNGOption configures PNG rendering via [PNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	cellSize    int
	markCenters bool
}

// WithPNGCellSize sets the rendered size of one grid cell in pixels
// (default 8).
func WithPNGCellSize(px int) PNGOption {
	return func(r *pngRenderer) {
		if px > 0 {
			r.cellSize = px
		}
	}
}

// WithPNGCenterMarkers draws a marker on each room center.
func WithPNGCenterMarkers() PNGOption {
	return func(r *pngRenderer) { r.markCenters = true }
}

// PNG renders the dungeon map as a raster image, one filled square per
// excavated cell. Output is deterministic for identical records.
func PNG(d *dungeon.Dungeon, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{cellSize: 8}
	for _, opt := range opts {
		opt(&r)
	}

	extent := grid.Extent(d.Excavated)
	width := extent.Width() * r.cellSize
	height := extent.Height() * r.cellSize

	dc := gg.NewContext(width, height)
	dc.SetHexColor(svgBackground)
	dc.Clear()

	cell := float64(r.cellSize)
	dc.SetHexColor(svgCell)
	for _, p := range d.Excavated.Points() {
		x := float64(p.X-extent.MinX) * cell
		y := float64(extent.MaxY-p.Y) * cell
		dc.DrawRectangle(x, y, cell, cell)
	}
	dc.Fill()

	if r.markCenters {
		dc.SetHexColor(svgCenter)
		for _, c := range d.Centers {
			x := float64(c.X-extent.MinX)*cell + cell/2
			y := float64(extent.MaxY-c.Y)*cell + cell/2
			dc.DrawCircle(x, y, cell/2)
		}
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
