// Package cache stores decoded dungeon records and rendered artifacts so
// repeated runs over the same token skip regeneration. Three backends are
// provided: a file cache for CLI use, a redis cache for server deployments,
// and a null cache that disables caching entirely.
//
// Keys are derived through a Keyer so every consumer (CLI, HTTP server,
// pipeline) agrees on what identifies a cached entry: the token, the scatter
// seed, and — for artifacts — the render options.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all backends implement.
type Cache interface {
	// Get retrieves a value. hit is false when the key is absent or expired.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind. Dungeon records are pure functions of
// token+seed and could live forever; the TTLs mainly bound disk usage.
const (
	TTLDungeon  = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// DungeonKeyOpts identifies a generated dungeon record.
type DungeonKeyOpts struct {
	Seed uint64
}

// ArtifactKeyOpts identifies a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string
	Seed     uint64
	CellSize int
	Markers  bool
}

// Keyer generates cache keys.
type Keyer interface {
	DungeonKey(token string, opts DungeonKeyOpts) string
	ArtifactKey(token string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the token and options into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DungeonKey generates a key for a generated dungeon record.
func (DefaultKeyer) DungeonKey(token string, opts DungeonKeyOpts) string {
	return hashKey("dungeon", token, opts.Seed)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(token string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", token, opts.Seed, opts.Format, opts.CellSize, opts.Markers)
}
