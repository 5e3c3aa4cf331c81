package predictions

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/verdant/pkg/handlers"
	"github.com/JaimeStill/verdant/pkg/routes"
)

// Handler provides HTTP endpoints for prediction operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "predictions"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for prediction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/categories", Handler: h.Categories},
			{Method: "POST", Pattern: "/predictions", Handler: h.Record},
			{Method: "POST", Pattern: "/predictions/preview", Handler: h.Preview},
		},
	}
}

// Categories returns the selectable form inputs.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Categories())
}

// Record predicts a disease for the request body and appends it to history.
// A persistence failure still returns the prediction with saved=false.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	outcome, err := h.sys.Record(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	status := http.StatusCreated
	if !outcome.Saved {
		status = http.StatusOK
	}
	handlers.RespondJSON(w, status, outcome)
}

// Preview predicts a disease without recording it.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Predict(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (Request, bool) {
	req, err := handlers.DecodeJSON[Request](w, r, h.maxBodySize)
	if err != nil {
		handlers.RespondError(
			w, h.logger,
			handlers.DecodeStatus(err),
			fmt.Errorf("%w: %w", ErrInvalidRequest, err),
		)
		return req, false
	}
	return req, true
}
