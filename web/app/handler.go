package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JaimeStill/verdant/internal/encoders"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/model"
	"github.com/JaimeStill/verdant/internal/predictions"
	"github.com/JaimeStill/verdant/pkg/handlers"
	"github.com/JaimeStill/verdant/pkg/web"
)

// Messages shown in place of server-side failures; the detail is logged.
const (
	msgPredictFailed      = "Prediksi gagal diproses. Silakan coba lagi."
	msgHistoryUnavailable = "Riwayat prediksi tidak dapat dibaca."
)

type handler struct {
	preds  predictions.System
	hist   history.System
	views  *web.TemplateSet
	view   web.ViewDef
	logger *slog.Logger
}

func newHandler(
	preds predictions.System,
	hist history.System,
	views *web.TemplateSet,
	view web.ViewDef,
	logger *slog.Logger,
) *handler {
	return &handler{
		preds:  preds,
		hist:   hist,
		views:  views,
		view:   view,
		logger: logger.With("handler", "form"),
	}
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(form{LeafColor: encoders.LeafColors()[0].Code})
	h.render(w, r, http.StatusOK, p, r.URL.Query().Get("plant"))
}

func (h *handler) predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p := h.newPage(form{})
		p.Error = err.Error()
		h.render(w, r, http.StatusBadRequest, p, "")
		return
	}

	f, req, err := parseForm(r.PostForm)
	p := h.newPage(f)
	if err != nil {
		p.Error = err.Error()
		h.render(w, r, predictions.MapHTTPStatus(err), p, f.Filter)
		return
	}

	outcome, err := h.preds.Record(r.Context(), req)
	if err != nil {
		status := predictions.MapHTTPStatus(err)
		h.logger.Error("prediction failed", "plant", req.PlantName, "status", status, "error", err)
		p.Error = err.Error()
		if status >= http.StatusInternalServerError {
			p.Error = msgPredictFailed
		}
		h.render(w, r, status, p, f.Filter)
		return
	}

	p.Outcome = outcome
	h.render(w, r, http.StatusOK, p, f.Filter)
}

func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	data, err := h.hist.Export(r.Context(), r.URL.Query().Get("plant"))
	if err != nil {
		status := history.MapHTTPStatus(err)
		h.logger.Error("export failed", "status", status, "error", err)
		http.Error(w, handlers.ClientMessage(status, err), status)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", history.DefaultFilePath))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *handler) newPage(f form) *page {
	cats := h.preds.Categories()
	f.Symptoms = symptomFields(cats.Symptoms, f.checked)
	return &page{
		Plants:     cats.Plants,
		LeafColors: cats.LeafColors,
		Form:       f,
	}
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, p *page, filter string) {
	hv, err := h.historyView(r.Context(), filter)
	if err != nil {
		h.logger.Error("history unavailable", "error", err)
		p.HistoryError = msgHistoryUnavailable
	}
	p.History = hv

	if err := h.views.Write(w, status, layout, h.view.Template, h.view.Data(p)); err != nil {
		h.logger.Error("render failed", "error", err)
		http.Error(w, handlers.ClientMessage(http.StatusInternalServerError, err), http.StatusInternalServerError)
	}
}

func (h *handler) historyView(ctx context.Context, filter string) (*historyView, error) {
	view, err := h.hist.View(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(view.Plants) == 0 {
		return nil, nil
	}

	return &historyView{
		Filter:  view.Filter,
		Options: append([]string{history.AllPlants}, view.Plants...),
		Columns: history.Columns,
		Entries: view.Entries,
		Chart:   chartBars(view.Summary.Ranked()),
	}, nil
}

func parseForm(values url.Values) (form, predictions.Request, error) {
	f := form{
		PlantName: values.Get("plant_name"),
		Filter:    values.Get("plant"),
	}
	for i, name := range symptomNames {
		f.checked[i] = values.Has(name)
	}

	code, err := strconv.Atoi(values.Get("leaf_color"))
	if err != nil {
		return f, predictions.Request{}, fmt.Errorf("%w: %q", predictions.ErrInvalidLeafColor, values.Get("leaf_color"))
	}
	f.LeafColor = code

	return f, predictions.NewRequest(f.PlantName, code, model.SymptomsFromFlags(f.checked)), nil
}
