// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (logging, artifacts, history persistence, archive
// storage) that domain systems require.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/model"
	"github.com/JaimeStill/verdant/pkg/cache"
	"github.com/JaimeStill/verdant/pkg/database"
	"github.com/JaimeStill/verdant/pkg/lifecycle"
	"github.com/JaimeStill/verdant/pkg/logging"
	"github.com/JaimeStill/verdant/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Database and Cache are set only when the history backend needs them.
// Storage is nil when no archive provider is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Artifacts *model.Artifacts
	History   history.Store
	Database  database.System
	Cache     cache.System
	Storage   storage.System

	syncLogger func() error
}

// New creates an Infrastructure from the application configuration.
// Artifacts are loaded eagerly so a bad encoder or model file fails startup.
// Connection-backed systems are initialized but not started; call Start separately.
func New(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()

	logger, sync, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}

	artifacts, err := model.LoadArtifacts(ctx, &cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("artifacts load failed: %w", err)
	}
	logger.Info(
		"artifacts loaded",
		"encoders", cfg.Model.EncodersPath,
		"classifier", artifacts.Classifier.Name(),
	)

	infra := &Infrastructure{
		Lifecycle:  lc,
		Logger:     logger,
		Artifacts:  artifacts,
		syncLogger: sync,
	}

	if err := infra.initHistory(cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.Enabled() {
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
	}

	return infra, nil
}

func (i *Infrastructure) initHistory(cfg *config.Config) error {
	switch cfg.History.Backend {
	case config.BackendSQLite, config.BackendPostgres:
		db, err := database.New(&cfg.Database, i.Logger)
		if err != nil {
			return fmt.Errorf("database init failed: %w", err)
		}
		i.Database = db
		i.History = history.NewSQLStore(db.Connection(), db.Driver())
	case config.BackendRedis:
		c := cache.New(&cfg.Cache, i.Logger)
		i.Cache = c
		i.History = history.NewRedisStore(c.Client(), c.Key(cfg.History.Key))
	default:
		i.History = history.NewFileStore(cfg.History.Path)
	}

	i.Logger.Info("history backend selected", "backend", cfg.History.Backend)
	return nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if i.Cache != nil {
		if err := i.Cache.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("cache start failed: %w", err)
		}
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}

	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()
		i.Sync()
	})

	return nil
}

// Sync flushes buffered log output. Sync errors on a terminal stderr are expected
// and ignored.
func (i *Infrastructure) Sync() {
	if i.syncLogger != nil {
		_ = i.syncLogger()
	}
}

// Scoped returns a shallow copy whose Logger carries module=name. The
// copy shares every system with i.
func (i *Infrastructure) Scoped(name string) *Infrastructure {
	scoped := *i
	scoped.Logger = i.Logger.With("module", name)
	return &scoped
}
