package history

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/JaimeStill/verdant/pkg/handlers"
	"github.com/JaimeStill/verdant/pkg/pagination"
	"github.com/JaimeStill/verdant/pkg/routes"
)

// Handler provides HTTP endpoints for history operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SummaryResponse is the frequency table of predicted diseases.
type SummaryResponse struct {
	Filter   string         `json:"filter"`
	Total    int            `json:"total"`
	Diseases []DiseaseCount `json:"diseases"`
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "history"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for history endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/history",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/plants", Handler: h.Plants},
			{Method: "GET", Pattern: "/summary", Handler: h.Summary},
			{Method: "GET", Pattern: "/export", Handler: h.Export},
			{Method: "POST", Pattern: "/archive", Handler: h.Archive},
			{Method: "GET", Pattern: "/archive/{key...}", Handler: h.Download},
		},
	}
}

// List returns a page of history entries, optionally filtered by the plant query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	entries, err := h.sys.List(r.Context(), r.URL.Query().Get("plant"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pagination.Paginate(entries, page))
}

// Plants returns the distinct plant names present in the history.
func (h *Handler) Plants(w http.ResponseWriter, r *http.Request) {
	view, err := h.sys.View(r.Context(), AllPlants)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view.Plants)
}

// Summary returns disease frequencies for the filtered history.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	view, err := h.sys.View(r.Context(), r.URL.Query().Get("plant"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SummaryResponse{
		Filter:   view.Filter,
		Total:    view.Summary.Total(),
		Diseases: view.Summary.Ranked(),
	})
}

// Export downloads the filtered history as CSV.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.sys.Export(r.Context(), r.URL.Query().Get("plant"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	writeCSV(w, DefaultFilePath)
	w.Write(data)
}

// Archive uploads the filtered export to blob storage.
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	archive, err := h.sys.Archive(r.Context(), r.URL.Query().Get("plant"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, archive)
}

// Download streams a previously archived export.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	body, err := h.sys.OpenArchive(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer body.Close()

	writeCSV(w, path.Base(key))
	io.Copy(w, body)
}

func writeCSV(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
}
