package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"

	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/pkg/database"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

const envDSN = "VERDANT_DB_DSN"

var errNoDatabase = errors.New("history backend does not use a database")

// target is a migration source directory paired with a migrate database URL.
type target struct {
	driver string
	url    string
}

func newRootCmd() *cobra.Command {
	var dsn string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply prediction history schema migrations",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "database URL (postgres://... or sqlite://path)")

	run := func(fn func(*cobra.Command, *migrate.Migrate, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			t, err := resolveTarget(dsn)
			if err != nil {
				return err
			}
			m, err := newMigrator(t)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(cmd, m, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
				return report(cmd, m, ignoreNoChange(m.Up()))
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
				return report(cmd, m, ignoreNoChange(m.Down()))
			}),
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply N migrations, or revert when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, m *migrate.Migrate, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n == 0 {
					return fmt.Errorf("steps must be a non-zero integer, got %q", args[0])
				}
				return report(cmd, m, ignoreNoChange(m.Steps(n)))
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, m *migrate.Migrate, _ []string) error {
				return report(cmd, m, nil)
			}),
		},
		&cobra.Command{
			Use:   "force V",
			Short: "Mark version V as applied and clean, without running it",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, m *migrate.Migrate, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q", args[0])
				}
				return report(cmd, m, m.Force(v))
			}),
		},
	)
	return root
}

func newMigrator(t target) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, path.Join("migrations", t.driver))
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, t.url)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", t.driver, err)
	}
	return m, nil
}

// resolveTarget picks the database from the flag, the environment, or the
// loaded configuration, in that order.
func resolveTarget(dsn string) (target, error) {
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv(envDSN))
	}
	if dsn != "" {
		return targetFromURL(dsn)
	}

	cfg, err := config.Load()
	if err != nil {
		return target{}, fmt.Errorf("load config: %w", err)
	}
	if !cfg.History.UsesDatabase() {
		return target{}, fmt.Errorf("%w (%s); pass --dsn", errNoDatabase, cfg.History.Backend)
	}
	return targetFromConfig(&cfg.Database), nil
}

func targetFromConfig(cfg *database.Config) target {
	if cfg.Driver == database.DriverSQLite {
		return target{driver: database.DriverSQLite, url: "sqlite://" + cfg.Path}
	}
	return target{driver: database.DriverPostgres, url: cfg.Dsn()}
}

func targetFromURL(dsn string) (target, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return target{}, fmt.Errorf("database URL %q has no scheme", dsn)
	}
	switch scheme {
	case "postgres", "postgresql":
		return target{driver: database.DriverPostgres, url: dsn}, nil
	case "sqlite":
		return target{driver: database.DriverSQLite, url: dsn}, nil
	default:
		return target{}, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func report(cmd *cobra.Command, m *migrate.Migrate, err error) error {
	if err != nil {
		return err
	}
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Fprintln(cmd.OutOrStdout(), "version: none")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %v\n", v, dirty)
	return nil
}
