package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/JaimeStill/verdant/internal/model"
	"github.com/JaimeStill/verdant/pkg/cache"
	"github.com/JaimeStill/verdant/pkg/database"
	"github.com/JaimeStill/verdant/pkg/logging"
	"github.com/JaimeStill/verdant/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvVerdantEnv             = "VERDANT_ENV"
	EnvVerdantShutdownTimeout = "VERDANT_SHUTDOWN_TIMEOUT"
	EnvVerdantVersion         = "VERDANT_VERSION"
)

var loggingEnv = &logging.Env{
	Level:  "VERDANT_LOG_LEVEL",
	Format: "VERDANT_LOG_FORMAT",
}

var modelEnv = &model.Env{
	EncodersPath: "VERDANT_MODEL_ENCODERS_PATH",
	Kind:         "VERDANT_MODEL_KIND",
	ForestPath:   "VERDANT_MODEL_FOREST_PATH",
	BaseURL:      "VERDANT_MODEL_BASE_URL",
	Timeout:      "VERDANT_MODEL_TIMEOUT",
}

var databaseEnv = &database.Env{
	Path:            "VERDANT_DB_PATH",
	Host:            "VERDANT_DB_HOST",
	Port:            "VERDANT_DB_PORT",
	Name:            "VERDANT_DB_NAME",
	User:            "VERDANT_DB_USER",
	Password:        "VERDANT_DB_PASSWORD",
	SSLMode:         "VERDANT_DB_SSL_MODE",
	MaxOpenConns:    "VERDANT_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "VERDANT_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "VERDANT_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "VERDANT_DB_CONN_TIMEOUT",
}

var cacheEnv = &cache.Env{
	Addr:        "VERDANT_CACHE_ADDR",
	Password:    "VERDANT_CACHE_PASSWORD",
	DB:          "VERDANT_CACHE_DB",
	KeyPrefix:   "VERDANT_CACHE_KEY_PREFIX",
	DialTimeout: "VERDANT_CACHE_DIAL_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:         "VERDANT_STORAGE_PROVIDER",
	ContainerName:    "VERDANT_STORAGE_CONTAINER_NAME",
	ConnectionString: "VERDANT_STORAGE_CONNECTION_STRING",
	ServiceURL:       "VERDANT_STORAGE_SERVICE_URL",
	Endpoint:         "VERDANT_STORAGE_ENDPOINT",
	AccessKey:        "VERDANT_STORAGE_ACCESS_KEY",
	SecretKey:        "VERDANT_STORAGE_SECRET_KEY",
	Region:           "VERDANT_STORAGE_REGION",
	Secure:           "VERDANT_STORAGE_SECURE",
}

// Config is the root configuration for the Verdant service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	API             APIConfig       `toml:"api"`
	Web             WebConfig       `toml:"web"`
	Logging         logging.Config  `toml:"logging"`
	Model           model.Config    `toml:"model"`
	History         HistoryConfig   `toml:"history"`
	Database        database.Config `toml:"database"`
	Cache           cache.Config    `toml:"cache"`
	Storage         storage.Config  `toml:"storage"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the VERDANT_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvVerdantEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load builds the configuration from config.toml, the config.<env>.toml
// overlay selected by VERDANT_ENV, and environment variables, in that order
// of precedence from lowest to highest. Either file may be absent.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := decode(BaseConfigFile, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if path := overlayPath(); path != "" {
		var overlay Config
		if err := decode(path, &overlay); err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(&overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Web.Merge(&overlay.Web)
	c.Logging.Merge(&overlay.Logging)
	c.Model.Merge(&overlay.Model)
	c.History.Merge(&overlay.History)
	c.Database.Merge(&overlay.Database)
	c.Cache.Merge(&overlay.Cache)
	c.Storage.Merge(&overlay.Storage)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()
	if err := c.validate(); err != nil {
		return err
	}

	// history runs before database and cache: its backend decides whether
	// either of them is configured at all.
	sections := []struct {
		name string
		run  func() error
	}{
		{"server", c.Server.Finalize},
		{"api", c.API.Finalize},
		{"web", c.Web.Finalize},
		{"logging", func() error { return c.Logging.Finalize(loggingEnv) }},
		{"model", func() error { return c.Model.Finalize(modelEnv) }},
		{"history", c.History.Finalize},
		{"database", c.finalizeDatabase},
		{"cache", c.finalizeCache},
		{"storage", func() error { return c.Storage.Finalize(storageEnv) }},
	}
	for _, s := range sections {
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func (c *Config) finalizeDatabase() error {
	if !c.History.UsesDatabase() {
		return nil
	}
	c.Database.Driver = c.History.DatabaseDriver()
	return c.Database.Finalize(databaseEnv)
}

func (c *Config) finalizeCache() error {
	if !c.History.UsesCache() {
		return nil
	}
	return c.Cache.Finalize(cacheEnv)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvVerdantShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvVerdantVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func decode(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// overlayPath names the overlay for VERDANT_ENV, or "" when the variable
// is unset or the file does not exist.
func overlayPath() string {
	env := os.Getenv(EnvVerdantEnv)
	if env == "" {
		return ""
	}
	path := fmt.Sprintf(OverlayConfigPattern, env)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
