// Package dungeon derives a structured dungeon layout from an opaque token
// string. The same token (and the same scatter seed) always produces the same
// dungeon, which makes the package usable as a reproducible content-generation
// function.
//
// # Pipeline
//
// Generation runs as a fixed sequence of stages:
//
//  1. Decode: parse the token into room count, centers, sizes, shapes,
//     bounding box, and character statistics.
//  2. Excavate: expand each room's shape pattern around its center.
//  3. Tunnel: connect consecutive room pairs with L-shaped paths.
//  4. Scatter: add randomized extra cells inside the bounding box.
//  5. Classify: derive the biome name and numeric level.
//
// # Token layout
//
// A token starts with the literal prefix "nft1". The character at index 4
// selects the room count (2 + its base-36 value). Coordinates follow as two
// characters per room, then one shape character per room; both regions wrap
// cyclically over the token body when the token runs short. Sizes are read
// from the tail: one character per room starting at len(token)-roomCount.
//
// # Usage
//
//	rng := rand.New(rand.NewSource(42))
//	d, err := dungeon.Generate(token, rng)
//	if err != nil {
//	    // a malformed token is a permanent input error
//	}
//	for _, p := range d.Excavated.Points() {
//	    // draw p
//	}
//
// All decode failures carry a code from the errors package
// (INVALID_PREFIX, TOKEN_TOO_SHORT, INVALID_CHARACTER, INDEX_OUT_OF_BOUNDS).
// Stages after a successful decode are infallible except for scatter, which
// fails with SCATTER_CAPACITY_EXCEEDED when the bounding box cannot hold the
// requested number of distinct cells.
package dungeon
