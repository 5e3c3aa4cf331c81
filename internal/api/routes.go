package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	logger *slog.Logger,
) {
	groups := []routes.Group{
		domain.Predictions.Handler(cfg.API.MaxBodySizeBytes()).Routes(),
		domain.History.Handler(cfg.API.Pagination).Routes(),
	}
	routes.Register(mux, groups...)
	logger.Debug("api routes registered", "patterns", routes.Patterns(groups...))
}
