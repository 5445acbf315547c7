package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple deployments can share
// one backend without colliding. Useful when several server instances point
// at the same redis.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DungeonKey generates a prefixed key for a generated dungeon record.
func (k *ScopedKeyer) DungeonKey(token string, opts DungeonKeyOpts) string {
	return k.prefix + k.inner.DungeonKey(token, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(token string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(token, opts)
}
