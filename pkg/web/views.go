// Package web serves server-rendered pages: pre-parsed layout/view
// templates, static assets, and a router with a not-found fallback.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// ErrUnknownView is returned when rendering a view the set was not built with.
var ErrUnknownView = errors.New("unknown view")

type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData is the root value of every page template. BasePath is filled
// in by the TemplateSet so templates can build links with {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

func (v ViewDef) Data(data any) ViewData {
	return ViewData{Title: v.Title, Bundle: v.Bundle, Data: data}
}

// TemplateSet holds one parsed template tree per view, each a clone of
// the shared layouts.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matching layoutGlob in layoutFS and,
// for each view, a clone of them extended with viewSubdir/<Template> from
// viewFS. Any parse failure is returned immediately.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewRoot, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("view dir %s: %w", viewSubdir, err)
	}

	ts := &TemplateSet{
		views:    make(map[string]*template.Template, len(views)),
		basePath: basePath,
	}
	for _, v := range views {
		t, err := template.Must(layouts.Clone()).ParseFS(viewRoot, v.Template)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v.Template, err)
		}
		ts.views[v.Template] = t
	}
	return ts, nil
}

func (ts *TemplateSet) Render(w io.Writer, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
	data.BasePath = ts.basePath
	return t.ExecuteTemplate(w, layout, data)
}

// Write renders into a buffer and only then sends status and body. A
// returned render error means nothing has been written to w.
func (ts *TemplateSet) Write(w http.ResponseWriter, status int, layout, view string, data ViewData) error {
	var buf bytes.Buffer
	if err := ts.Render(&buf, layout, view, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}

// ErrorHandler renders view with status, falling back to a plain-text
// error when the page itself cannot be rendered.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Write(w, status, layout, view.Template, view.Data(nil)); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}
