package main

import (
	"context"
	"fmt"

	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/infrastructure"
	"github.com/JaimeStill/verdant/internal/predictions"
)

// session is the loaded configuration and domain systems for one command.
type session struct {
	infra       *infrastructure.Infrastructure
	history     history.System
	predictions predictions.System
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	infra, err := infrastructure.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logger := infra.Logger.With("module", "cli")
	hist := history.New(infra.History, infra.Storage, logger)

	return &session{
		infra:       infra,
		history:     hist,
		predictions: predictions.New(infra.Artifacts, hist, logger),
	}, nil
}

// Close releases connections opened for the history backend.
func (s *session) Close() {
	if s.infra.Database != nil {
		s.infra.Database.Connection().Close()
	}
	if s.infra.Cache != nil {
		s.infra.Cache.Client().Close()
	}
	s.infra.Sync()
}
