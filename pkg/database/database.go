// Package database opens the SQL connection pool behind the database
// history backends and ties it to the service lifecycle.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/JaimeStill/verdant/pkg/lifecycle"
)

type System interface {
	Connection() *sql.DB
	// Driver is DriverPostgres or DriverSQLite.
	Driver() string
	// Ping checks the connection within the configured timeout.
	Ping(ctx context.Context) error
	// Start pings on startup and closes the pool on shutdown.
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	driver  string
	conn    *sql.DB
	logger  *slog.Logger
	timeout time.Duration
}

// New opens the pool without dialing; the first connection is made by
// Ping or the first query.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open(cfg.DriverName(), cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Driver == DriverSQLite {
		// single writer
		maxOpen = 1
	}
	idle := cfg.MaxIdleConns
	if maxOpen > 0 {
		idle = min(idle, maxOpen)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		driver:  cfg.Driver,
		conn:    db,
		logger:  logger.With("system", "database", "driver", cfg.Driver),
		timeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB { return d.conn }

func (d *database) Driver() string { return d.driver }

func (d *database) Ping(ctx context.Context) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", d.driver, err)
	}
	return nil
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if err := d.Ping(lc.Context()); err != nil {
			d.logger.Error("database unreachable", "error", err)
			return
		}
		d.logger.Info("database connected")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database closed")
	})

	return nil
}
