// Package render turns a generated dungeon record into output artifacts.
//
// Five sinks are provided:
//
//   - Text: the classic character map ('@' ground, 'O' excavated), optionally
//     styled for terminals.
//   - JSON: the full record as a pretty-printed document, the primary data
//     interchange format.
//   - SVG: a hand-built vector map with one square per excavated cell.
//   - PNG: a raster map drawn with fogleman/gg.
//   - DOT: the room-connectivity graph (rooms as nodes, tunnels as edges) in
//     Graphviz DOT form, renderable to SVG/PNG in-process.
//
// Each sink takes the dungeon record plus sink-specific functional options.
// The Artifact dispatcher maps a format name to the matching sink for
// pipeline and HTTP use.
package render
