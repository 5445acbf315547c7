// Package observability provides hooks for metrics and instrumentation.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about generation runs, cache operations,
// and HTTP serving.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// GenerationHooks receives events from the generation pipeline.
type GenerationHooks interface {
	// OnGenerated records a successful generation run.
	OnGenerated(token string, rooms, cells int, duration time.Duration)

	// OnGenerateError records a failed run with its machine-readable code.
	OnGenerateError(token string, code string)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnHit records a cache hit for an entry kind ("dungeon" or "artifact").
	OnHit(kind string)

	// OnMiss records a cache miss for an entry kind.
	OnMiss(kind string)
}

// ServerHooks receives events from the HTTP server.
type ServerHooks interface {
	// OnRequest records a completed request.
	OnRequest(method, path string, status int, duration time.Duration)
}

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerated(string, int, int, time.Duration) {}
func (NoopGenerationHooks) OnGenerateError(string, string)              {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnHit(string)  {}
func (NoopCacheHooks) OnMiss(string) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(string, string, int, time.Duration) {}

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	serverHooks     ServerHooks     = NoopServerHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}

// Generated forwards a successful run to the registered generation hooks.
func Generated(token string, rooms, cells int, duration time.Duration) {
	Generation().OnGenerated(token, rooms, cells, duration)
}

// GenerateError forwards a failed run to the registered generation hooks.
func GenerateError(token string, code string) {
	Generation().OnGenerateError(token, code)
}

// CacheHit forwards a cache hit to the registered cache hooks.
func CacheHit(kind string) {
	Cache().OnHit(kind)
}

// CacheMiss forwards a cache miss to the registered cache hooks.
func CacheMiss(kind string) {
	Cache().OnMiss(kind)
}

// Request forwards a completed HTTP request to the registered server hooks.
func Request(method, path string, status int, duration time.Duration) {
	Server().OnRequest(method, path, status, duration)
}
