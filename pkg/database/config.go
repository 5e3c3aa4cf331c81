package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects the history database. Path applies to SQLite; the
// remaining connection fields apply to PostgreSQL.
type Config struct {
	Driver          string `toml:"driver"`
	Path            string `toml:"path"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	SSLMode         string `toml:"ssl_mode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env names the environment variables that override Config.
type Env struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
}

type stringField struct {
	value    *string
	env      string
	fallback string
}

type intField struct {
	value    *int
	env      string
	fallback int
}

func (c *Config) stringFields(env *Env) []stringField {
	return []stringField{
		{&c.Driver, env.Driver, DriverPostgres},
		{&c.Path, env.Path, "verdant.db"},
		{&c.Host, env.Host, "localhost"},
		{&c.Name, env.Name, ""},
		{&c.User, env.User, ""},
		{&c.Password, env.Password, ""},
		{&c.SSLMode, env.SSLMode, "disable"},
		{&c.ConnMaxLifetime, env.ConnMaxLifetime, "15m"},
		{&c.ConnTimeout, env.ConnTimeout, "5s"},
	}
}

func (c *Config) intFields(env *Env) []intField {
	return []intField{
		{&c.Port, env.Port, 5432},
		{&c.MaxOpenConns, env.MaxOpenConns, 25},
		{&c.MaxIdleConns, env.MaxIdleConns, 5},
	}
}

func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// DriverName is the database/sql driver registered for Driver.
func (c *Config) DriverName() string {
	if c.Driver == DriverSQLite {
		return "sqlite"
	}
	return "pgx"
}

// Dsn renders a modernc file URI for SQLite or a postgres:// URL with
// escaped credentials for PostgreSQL.
func (c *Config) Dsn() string {
	if c.Driver == DriverSQLite {
		return "file:" + c.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	return u.String()
}

// Finalize fills defaults, applies env overrides, and validates.
func (c *Config) Finalize(env *Env) error {
	if env == nil {
		env = &Env{}
	}
	c.loadDefaults(env)
	if err := c.loadEnv(env); err != nil {
		return err
	}
	return c.validate()
}

// Merge copies the non-zero fields of overlay onto c.
func (c *Config) Merge(overlay *Config) {
	none := &Env{}
	over := overlay.stringFields(none)
	for i, f := range c.stringFields(none) {
		if v := *over[i].value; v != "" {
			*f.value = v
		}
	}
	overInts := overlay.intFields(none)
	for i, f := range c.intFields(none) {
		if v := *overInts[i].value; v != 0 {
			*f.value = v
		}
	}
}

func (c *Config) loadDefaults(env *Env) {
	for _, f := range c.stringFields(env) {
		if *f.value == "" {
			*f.value = f.fallback
		}
	}
	for _, f := range c.intFields(env) {
		if *f.value == 0 {
			*f.value = f.fallback
		}
	}
}

func (c *Config) loadEnv(env *Env) error {
	for _, f := range c.stringFields(env) {
		if v := lookup(f.env); v != "" {
			*f.value = v
		}
	}

	var errs []error
	for _, f := range c.intFields(env) {
		v := lookup(f.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.env, err))
			continue
		}
		*f.value = n
	}
	return errors.Join(errs...)
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func (c *Config) validate() error {
	var errs []error

	switch c.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Name == "" {
			errs = append(errs, errors.New("name required"))
		}
		if c.User == "" {
			errs = append(errs, errors.New("user required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported driver %q", c.Driver))
	}

	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("invalid conn_max_lifetime: %w", err))
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid conn_timeout: %w", err))
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errs = append(errs, fmt.Errorf("max_idle_conns %d exceeds max_open_conns %d", c.MaxIdleConns, c.MaxOpenConns))
	}
	return errors.Join(errs...)
}
