package model

import (
	"fmt"
	"os"
	"slices"
	"time"
)

// Classifier kinds.
const (
	KindForest = "forest"
	KindRemote = "remote"
)

// Config locates the encoder and classifier artifacts.
type Config struct {
	EncodersPath string `toml:"encoders_path"`
	Kind         string `toml:"kind"`
	ForestPath   string `toml:"forest_path"`
	BaseURL      string `toml:"base_url"`
	Timeout      string `toml:"timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	EncodersPath string
	Kind         string
	ForestPath   string
	BaseURL      string
	Timeout      string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.EncodersPath != "" {
		c.EncodersPath = overlay.EncodersPath
	}
	if overlay.Kind != "" {
		c.Kind = overlay.Kind
	}
	if overlay.ForestPath != "" {
		c.ForestPath = overlay.ForestPath
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadDefaults() {
	if c.EncodersPath == "" {
		c.EncodersPath = "artifacts/label_encoders.yaml"
	}
	if c.Kind == "" {
		c.Kind = KindForest
	}
	if c.ForestPath == "" {
		c.ForestPath = "artifacts/random_forest.yaml"
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.EncodersPath != "" {
		if v := os.Getenv(env.EncodersPath); v != "" {
			c.EncodersPath = v
		}
	}
	if env.Kind != "" {
		if v := os.Getenv(env.Kind); v != "" {
			c.Kind = v
		}
	}
	if env.ForestPath != "" {
		if v := os.Getenv(env.ForestPath); v != "" {
			c.ForestPath = v
		}
	}
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
}

func (c *Config) validate() error {
	if !slices.Contains([]string{KindForest, KindRemote}, c.Kind) {
		return fmt.Errorf("unsupported kind %q", c.Kind)
	}
	if c.Kind == KindRemote && c.BaseURL == "" {
		return fmt.Errorf("base_url required for remote classifier")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
