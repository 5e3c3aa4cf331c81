// Package pagination slices result sets into pages and parses page
// requests from query strings.
package pagination

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// ConfigEnv names the environment variables that override Config.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Finalize fills defaults, applies env overrides, and validates.
// A set env variable that is not an integer is an error.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func (c *Config) loadDefaults() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = maxPageSize
	}
}

func (c *Config) loadEnv(env *ConfigEnv) error {
	return errors.Join(
		envInt(env.DefaultPageSize, &c.DefaultPageSize),
		envInt(env.MaxPageSize, &c.MaxPageSize),
	)
}

func envInt(name string, dst *int) error {
	if name == "" {
		return nil
	}
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DefaultPageSize < 1 {
		errs = append(errs, errors.New("default_page_size must be positive"))
	}
	if c.MaxPageSize < 1 {
		errs = append(errs, errors.New("max_page_size must be positive"))
	}
	if len(errs) == 0 && c.DefaultPageSize > c.MaxPageSize {
		errs = append(errs, errors.New("default_page_size cannot exceed max_page_size"))
	}
	return errors.Join(errs...)
}
