package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "VERDANT_SERVER_HOST"
	EnvServerPort              = "VERDANT_SERVER_PORT"
	EnvServerReadTimeout       = "VERDANT_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "VERDANT_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "VERDANT_SERVER_WRITE_TIMEOUT"
	EnvServerShutdownTimeout   = "VERDANT_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds the HTTP listener settings. Timeouts are Go duration
// strings such as "30s".
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
}

type durationField struct {
	name   string
	env    string
	value  *string
	preset string
}

func (c *ServerConfig) durations() []durationField {
	return []durationField{
		{"read_timeout", EnvServerReadTimeout, &c.ReadTimeout, "1m"},
		{"read_header_timeout", EnvServerReadHeaderTimeout, &c.ReadHeaderTimeout, "10s"},
		{"write_timeout", EnvServerWriteTimeout, &c.WriteTimeout, "1m"},
		{"shutdown_timeout", EnvServerShutdownTimeout, &c.ShutdownTimeout, "30s"},
	}
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return parseDuration(c.ReadTimeout)
}

func (c *ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return parseDuration(c.ReadHeaderTimeout)
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return parseDuration(c.WriteTimeout)
}

func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return parseDuration(c.ShutdownTimeout)
}

// parseDuration assumes a validated value and yields 0 otherwise.
func parseDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	over := overlay.durations()
	for i, f := range c.durations() {
		if v := *over[i].value; v != "" {
			*f.value = v
		}
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	for _, f := range c.durations() {
		if *f.value == "" {
			*f.value = f.preset
		}
	}
}

func (c *ServerConfig) loadEnv() error {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvServerPort, err)
		}
		c.Port = port
	}
	for _, f := range c.durations() {
		if v := os.Getenv(f.env); v != "" {
			*f.value = v
		}
	}
	return nil
}

func (c *ServerConfig) validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	for _, f := range c.durations() {
		d, err := time.ParseDuration(*f.value)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("invalid %s: %w", f.name, err))
		case d < 0:
			errs = append(errs, fmt.Errorf("invalid %s: negative duration", f.name))
		}
	}
	return errors.Join(errs...)
}
