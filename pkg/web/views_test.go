package web_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/verdant/pkg/web"
)

var (
	pageView    = web.ViewDef{Route: "/", Template: "page.html", Title: "Prediksi", Bundle: "app"}
	missingView = web.ViewDef{Template: "missing.html", Title: "Tidak ditemukan", Bundle: "app"}
)

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(
		testFS, testFS,
		"testdata/layouts/*.html",
		"testdata/views",
		"/app",
		[]web.ViewDef{pageView, missingView},
	)
	if err != nil {
		t.Fatalf("NewTemplateSet: %v", err)
	}
	return ts
}

func TestRender(t *testing.T) {
	ts := newTemplateSet(t)

	var buf bytes.Buffer
	data := web.ViewData{Title: pageView.Title, Bundle: pageView.Bundle, Data: "Busuk Batang"}
	if err := ts.Render(&buf, "base", pageView.Template, data); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<title>Prediksi</title>",
		`href="/app/static/app.css"`,
		"<p>Busuk Batang</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEscapesData(t *testing.T) {
	ts := newTemplateSet(t)

	var buf bytes.Buffer
	data := web.ViewData{Data: "<script>alert(1)</script>"}
	if err := ts.Render(&buf, "base", pageView.Template, data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("data not escaped: %s", buf.String())
	}
}

func TestRenderUnknownView(t *testing.T) {
	ts := newTemplateSet(t)

	var buf bytes.Buffer
	err := ts.Render(&buf, "base", "other.html", web.ViewData{})
	if !errors.Is(err, web.ErrUnknownView) {
		t.Errorf("Render() error = %v, want ErrUnknownView", err)
	}
}

func TestWrite(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Write(rec, http.StatusUnprocessableEntity, "base", pageView.Template, pageView.Data("Karat Daun")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<title>Prediksi</title>") {
		t.Errorf("body missing view title: %s", rec.Body.String())
	}
}

func TestWriteRenderFailureWritesNothing(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Write(rec, http.StatusOK, "base", "other.html", web.ViewData{}); err == nil {
		t.Fatal("expected error for unregistered view")
	}
	if rec.Body.Len() != 0 || rec.Header().Get("Content-Type") != "" {
		t.Errorf("response written on failure: %q", rec.Body.String())
	}
}

func TestNewTemplateSetMissingView(t *testing.T) {
	_, err := web.NewTemplateSet(
		testFS, testFS,
		"testdata/layouts/*.html",
		"testdata/views",
		"/app",
		[]web.ViewDef{{Template: "absent.html"}},
	)
	if err == nil {
		t.Error("expected error for missing view template")
	}
}

func TestNewTemplateSetBadLayoutGlob(t *testing.T) {
	_, err := web.NewTemplateSet(
		testFS, testFS,
		"testdata/none/*.html",
		"testdata/views",
		"/app",
		nil,
	)
	if err == nil {
		t.Error("expected error for layout glob without matches")
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	ts.ErrorHandler("base", missingView, http.StatusNotFound).
		ServeHTTP(rec, httptest.NewRequest("GET", "/app/unknown", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type: got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "not found") {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func TestErrorHandlerRenderFailure(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	ts.ErrorHandler("missing-layout", missingView, http.StatusNotFound).
		ServeHTTP(rec, httptest.NewRequest("GET", "/app/unknown", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("content-type: got %q, want text/plain", rec.Header().Get("Content-Type"))
	}
}
