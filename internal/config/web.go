package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvWebBasePath = "VERDANT_WEB_BASE_PATH"
	EnvWebTitle    = "VERDANT_WEB_TITLE"
)

// WebConfig holds settings for the HTML prediction form.
type WebConfig struct {
	BasePath string `toml:"base_path"`
	Title    string `toml:"title"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WebConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
}

func (c *WebConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.Title == "" {
		c.Title = "Prediksi Penyakit Tanaman"
	}
}

func (c *WebConfig) loadEnv() {
	if v := os.Getenv(EnvWebBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvWebTitle); v != "" {
		c.Title = v
	}
}

func (c *WebConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || c.BasePath == "/" || strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("invalid base_path %q: must be a single-level sub-path", c.BasePath)
	}
	return nil
}
