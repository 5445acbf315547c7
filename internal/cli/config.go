package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the config file. Flags always
// win over config values, which in turn win over built-in defaults.
type Config struct {
	// Seed feeds the scatter stage when --seed is not given.
	Seed uint64 `toml:"seed"`

	// Formats is the default artifact format list for render.
	Formats []string `toml:"formats"`

	// CellSize is the default pixel size per cell for svg/png output.
	CellSize int `toml:"cell_size"`

	// Markers draws room-center markers in svg/png output.
	Markers bool `toml:"markers"`

	Server ServerConfig `toml:"server"`
	Redis  RedisConfig  `toml:"redis"`
	Mongo  MongoConfig  `toml:"mongo"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// RedisConfig configures the optional redis cache backend for serve.
// An empty Addr disables redis; the file cache is used instead.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the optional run-history store.
// An empty URI disables history persistence.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		Seed:     42,
		Formats:  []string{"txt"},
		CellSize: 8,
		Server:   ServerConfig{Addr: ":8420"},
	}
}

// LoadConfig reads the config file and merges it over the defaults.
// A missing or unreadable file is not an error; defaults are returned.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	// A malformed file falls back to whatever decoded before the error.
	_, _ = toml.Decode(string(data), cfg)
	return cfg
}

// configPath returns the config file path using XDG standard
// (~/.config/excavator/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
