package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/pkg/database"
)

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"

	EnvHistoryBackend = "VERDANT_HISTORY_BACKEND"
	EnvHistoryPath    = "VERDANT_HISTORY_PATH"
	EnvHistoryKey     = "VERDANT_HISTORY_KEY"
)

// Backends lists the supported history backends.
var Backends = []string{BackendFile, BackendSQLite, BackendPostgres, BackendRedis}

// HistoryConfig selects and parameterizes the prediction history backend.
// Path applies to the file backend, Key to the redis backend. The sql
// backends take their connection settings from the database section.
type HistoryConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	Key     string `toml:"key"`
}

// UsesDatabase reports whether the backend is served by pkg/database.
func (c *HistoryConfig) UsesDatabase() bool {
	return c.Backend == BackendSQLite || c.Backend == BackendPostgres
}

// UsesCache reports whether the backend is served by pkg/cache.
func (c *HistoryConfig) UsesCache() bool {
	return c.Backend == BackendRedis
}

// DatabaseDriver returns the pkg/database driver for a sql backend.
func (c *HistoryConfig) DatabaseDriver() string {
	if c.Backend == BackendSQLite {
		return database.DriverSQLite
	}
	return database.DriverPostgres
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *HistoryConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *HistoryConfig) Merge(overlay *HistoryConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Key != "" {
		c.Key = overlay.Key
	}
}

func (c *HistoryConfig) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.Path == "" {
		c.Path = history.DefaultFilePath
	}
	if c.Key == "" {
		c.Key = "history"
	}
}

func (c *HistoryConfig) loadEnv() {
	if v := os.Getenv(EnvHistoryBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvHistoryPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvHistoryKey); v != "" {
		c.Key = v
	}
}

func (c *HistoryConfig) validate() error {
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("invalid backend %q: want one of %v", c.Backend, Backends)
	}
	return nil
}
