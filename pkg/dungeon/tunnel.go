package dungeon

// Tunnels connects consecutive room centers pairwise: (0,1), (2,3), (4,5), …
// An unpaired trailing center produces no tunnel. Order of the input slice is
// significant and preserved.
func Tunnels(centers []Point) [][]Point {
	var tunnels [][]Point
	for i := 0; i+1 < len(centers); i += 2 {
		tunnels = append(tunnels, Tunnel(centers[i], centers[i+1]))
	}
	return tunnels
}

// Tunnel builds an L-shaped Manhattan path from start to end: one cell at a
// time along x, then along y. Each point is recorded before the step, so the
// path includes start but excludes end. start == end yields an empty path.
func Tunnel(start, end Point) []Point {
	var path []Point

	x, y := start.X, start.Y
	for x != end.X {
		path = append(path, Point{X: x, Y: y})
		if x < end.X {
			x++
		} else {
			x--
		}
	}
	for y != end.Y {
		path = append(path, Point{X: x, Y: y})
		if y < end.Y {
			y++
		} else {
			y--
		}
	}
	return path
}
