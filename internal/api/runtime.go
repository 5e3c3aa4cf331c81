package api

import (
	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/internal/infrastructure"
	"github.com/JaimeStill/verdant/pkg/pagination"
)

// Runtime is the infrastructure as seen by the API module.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: infra.Scoped("api"),
		Pagination:     cfg.API.Pagination,
	}
}
