package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	g := NoopGenerationHooks{}
	g.OnGenerated("nft100a1b7823", 2, 40, time.Second)
	g.OnGenerateError("xyz", "INVALID_PREFIX")

	c := NoopCacheHooks{}
	c.OnHit("dungeon")
	c.OnMiss("artifact")

	s := NoopServerHooks{}
	s.OnRequest("GET", "/dungeons/nft100a1b7823", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	customGen := &testGenerationHooks{}
	SetGenerationHooks(customGen)
	if Generation() != customGen {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Reset() should restore NoopGenerationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGenerationHooks{}
	SetGenerationHooks(custom)

	SetGenerationHooks(nil)

	if Generation() != custom {
		t.Error("SetGenerationHooks(nil) should be ignored")
	}

	Reset()
}

func TestConvenienceForwarders(t *testing.T) {
	Reset()
	defer Reset()

	hooks := &countingCacheHooks{}
	SetCacheHooks(hooks)

	CacheHit("dungeon")
	CacheHit("artifact")
	CacheMiss("dungeon")

	if hooks.hits != 2 || hooks.misses != 1 {
		t.Errorf("counts = (%d hits, %d misses), want (2, 1)", hooks.hits, hooks.misses)
	}
}

// Test implementations
type testGenerationHooks struct{ NoopGenerationHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }

type countingCacheHooks struct {
	hits   int
	misses int
}

func (c *countingCacheHooks) OnHit(string)  { c.hits++ }
func (c *countingCacheHooks) OnMiss(string) { c.misses++ }
