package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.CellSize != 8 {
		t.Errorf("CellSize = %d, want 8", cfg.CellSize)
	}
	if cfg.Server.Addr != ":8420" {
		t.Errorf("Server.Addr = %q, want :8420", cfg.Server.Addr)
	}
	if cfg.Mongo.URI != "" || cfg.Redis.Addr != "" {
		t.Errorf("optional backends should default to disabled: %+v", cfg)
	}
}

func TestLoadConfigMergesFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `
seed = 7
markers = true
formats = ["svg", "json"]

[server]
addr = ":9000"

[mongo]
uri = "mongodb://localhost:27017"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()

	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if !cfg.Markers {
		t.Error("Markers = false, want true")
	}
	if len(cfg.Formats) != 2 || cfg.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want [svg json]", cfg.Formats)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}

	// Unset keys keep their defaults.
	if cfg.CellSize != 8 {
		t.Errorf("CellSize = %d, want default 8", cfg.CellSize)
	}
}
