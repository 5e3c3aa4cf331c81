package middleware

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig holds CORS policy settings.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	ExposedHeaders   []string `toml:"exposed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// CORSEnv maps CORS config fields to environment variable names for override injection.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	ExposedHeaders   string
	AllowCredentials string
	MaxAge           string
}

type listField struct {
	value    *[]string
	env      string
	fallback []string
}

// The API only serves GET and POST; Content-Disposition carries the export
// file name.
func (c *CORSConfig) lists(env *CORSEnv) []listField {
	return []listField{
		{&c.Origins, env.Origins, nil},
		{&c.AllowedMethods, env.AllowedMethods, []string{"GET", "POST", "OPTIONS"}},
		{&c.AllowedHeaders, env.AllowedHeaders, []string{"Content-Type"}},
		{&c.ExposedHeaders, env.ExposedHeaders, []string{"Content-Disposition"}},
	}
}

// Finalize applies defaults and environment overrides. Malformed boolean or
// integer variables are reported together.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	if env == nil {
		env = &CORSEnv{}
	}
	for _, f := range c.lists(env) {
		if len(*f.value) == 0 && f.fallback != nil {
			*f.value = slices.Clone(f.fallback)
		}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}
	return c.loadEnv(env)
}

// Merge applies overlay onto c. Enabled and AllowCredentials always take the
// overlay value; lists and MaxAge only when the overlay sets them.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	none := &CORSEnv{}
	over := overlay.lists(none)
	for i, f := range c.lists(none) {
		if *over[i].value != nil {
			*f.value = *over[i].value
		}
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}

func (c *CORSConfig) loadEnv(env *CORSEnv) error {
	for _, f := range c.lists(env) {
		if v := lookup(f.env); v != "" {
			*f.value = splitList(v)
		}
	}

	var errs []error
	flags := []struct {
		env string
		dst *bool
	}{
		{env.Enabled, &c.Enabled},
		{env.AllowCredentials, &c.AllowCredentials},
	}
	for _, f := range flags {
		v := lookup(f.env)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.env, err))
			continue
		}
		*f.dst = b
	}
	if v := lookup(env.MaxAge); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", env.MaxAge, err))
		} else {
			c.MaxAge = n
		}
	}
	return errors.Join(errs...)
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func splitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
