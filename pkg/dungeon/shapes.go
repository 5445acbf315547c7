package dungeon

// baseOffsets maps each shape symbol to its base pattern of relative cells.
// Symbols are folded to lowercase before lookup; unrecognized symbols map to
// no cells at all.
var baseOffsets = map[byte][]Point{
	'0': {{0, 0}},                            // single point
	'1': {{0, 1}, {0, -1}},                   // vertical line
	'2': {{1, 0}, {-1, 0}},                   // horizontal line
	'3': {{1, 1}, {-1, -1}},                  // diagonal line
	'4': {{-1, 0}, {1, 0}, {0, 1}},           // L-shape
	'5': {{0, -1}, {1, 0}, {-1, 1}},          // reverse L-shape
	'6': {{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}, // diagonal cross
	'7': {{0, 1}, {1, 0}, {0, -1}, {-1, 0}},   // full cross
	'8': {{-2, 0}, {2, 0}, {0, -2}, {0, 2}},   // large cross
	'9': {{-3, 0}, {3, 0}, {0, -3}, {0, 3}},   // very large cross

	'a': {{0, 1}, {-1, 0}, {1, 0}, {0, -1}},   // cross
	'b': {{-1, 1}, {1, -1}},                   // diagonal corners
	'c': {{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}, // full diamond
	'd': {{-2, 2}, {2, 2}, {-2, -2}, {2, -2}}, // large diamond
	'e': {{-2, 0}, {2, 0}, {0, -2}, {0, 2}},   // expanded cross
	'f': {{1, 1}, {2, 2}},                     // expanding diagonal
	'g': {{-1, 0}, {-2, 0}, {-3, 0}},          // horizontal line left
	'h': {{0, 1}, {0, 2}, {0, 3}},             // vertical line up
	'i': {{0, 0}},                             // single point
	'j': {{-1, 1}, {0, 1}, {1, 0}},            // corner
	'k': {{0, 2}, {-1, 1}, {1, -1}},           // triangle
	'l': {{-2, 0}, {1, -1}, {2, -2}},          // reverse diagonal
	'm': {{-1, -1}, {0, 1}, {1, 0}, {-1, 1}},  // M-shape
	'n': {{-1, 1}, {1, -1}, {0, 0}},           // zigzag
	'o': {{-2, 2}, {2, -2}, {0, 0}},           // circle-like
	'p': {{-1, 1}, {1, 1}, {1, -1}},           // partial diamond
	'q': {{-1, 1}, {-1, -1}},                  // partial diamond reversed
	'r': {{-2, 2}, {0, 2}, {2, 2}},            // semi-circle
	's': {{-2, -2}, {0, -2}, {2, -2}},         // semi-circle reversed
	't': {{-1, 0}, {0, 0}, {1, 0}},            // T-shape
	'u': {{-1, -1}, {1, -1}},                  // U-shape
	'v': {{0, 2}, {-1, 1}, {1, 1}},            // V-shape
	'w': {{-1, 1}, {0, 0}, {1, -1}},           // W-shape
	'x': {{-2, 2}, {2, -2}, {-2, -2}, {2, 2}}, // X-shape
	'y': {{0, 2}, {-1, 1}, {1, -1}},           // Y-shape
	'z': {{-1, 0}, {0, 1}, {1, 0}},            // Z-shape
}

// foldShape normalizes a shape symbol for table lookup.
func foldShape(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// BaseShape returns the unexpanded offset pattern for a shape symbol.
// The returned slice is shared and must not be modified.
func BaseShape(shape byte) []Point {
	return baseOffsets[foldShape(shape)]
}

// ExpandShape returns the deduplicated relative cells for a shape at the given
// size. Every base offset grows into a filled square of half-width size-1
// centered on it: size 1 leaves each base point unchanged, size 0 produces no
// cells. This is an area-expansion rule, not coordinate scaling.
//
// Results keep a stable order: base offsets in table order, each square
// row-major, duplicates skipped on later occurrence.
func ExpandShape(shape byte, size int) []Point {
	base := baseOffsets[foldShape(shape)]
	if len(base) == 0 || size <= 0 {
		return nil
	}

	half := size - 1
	cells := make([]Point, 0, len(base)*(2*half+1)*(2*half+1))
	seen := make(map[Point]struct{}, cap(cells))
	for _, b := range base {
		for x := b.X - half; x <= b.X+half; x++ {
			for y := b.Y - half; y <= b.Y+half; y++ {
				p := Point{X: x, Y: y}
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				cells = append(cells, p)
			}
		}
	}
	return cells
}
