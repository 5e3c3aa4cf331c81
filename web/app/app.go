// Package app serves the interactive plant disease prediction form: the
// input form, the prediction result, and the filterable history with its
// disease frequency chart.
package app

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/JaimeStill/verdant/internal/config"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/infrastructure"
	"github.com/JaimeStill/verdant/internal/predictions"
	"github.com/JaimeStill/verdant/pkg/middleware"
	"github.com/JaimeStill/verdant/pkg/module"
	"github.com/JaimeStill/verdant/pkg/web"
)

//go:embed layouts views static
var files embed.FS

const layout = "layout"

// NewModule creates the form module mounted at cfg.Web.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	infra = infra.Scoped("app")
	logger := infra.Logger

	index := web.ViewDef{Route: "/", Template: "index.html", Title: cfg.Web.Title, Bundle: "app"}
	notFound := web.ViewDef{Route: "", Template: "not-found.html", Title: "Halaman tidak ditemukan", Bundle: "app"}

	views, err := web.NewTemplateSet(
		files, files,
		"layouts/*.html", "views",
		cfg.Web.BasePath,
		[]web.ViewDef{index, notFound},
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	hist := history.New(infra.History, infra.Storage, logger)
	h := newHandler(
		predictions.New(infra.Artifacts, hist, logger),
		hist,
		views,
		index,
		logger,
	)

	router := web.NewRouter()
	router.HandleFunc("GET /{$}", h.index)
	router.HandleFunc("POST /{$}", h.predict)
	router.HandleFunc("GET /export", h.export)
	router.Handle("GET /static/", web.DistServer(files, "static", "/static"))
	router.Routes(web.PublicFileRoutes(files, "static", "favicon.svg")...)
	router.SetFallback(views.ErrorHandler(layout, notFound, http.StatusNotFound))

	m := module.New(cfg.Web.BasePath, router)
	m.Use(middleware.Logger(logger))

	return m, nil
}
