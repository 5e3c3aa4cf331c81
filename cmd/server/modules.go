package main

import (
	"net/http"

	"github.com/JaimeStill/verdant/internal/api"
	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/internal/infrastructure"
	"github.com/JaimeStill/verdant/pkg/module"
	"github.com/JaimeStill/verdant/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Web.BasePath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", infra.Lifecycle.Healthz)
	router.HandleNative("GET /readyz", infra.Lifecycle.Readyz)

	return router
}
