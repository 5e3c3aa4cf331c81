// Package routes declares HTTP endpoints as nested prefix groups and
// registers them on a ServeMux using method-qualified patterns.
package routes

import "net/http"

type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group collects routes under Prefix. Children extend the parent prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds every route in groups to mux.
func Register(mux *http.ServeMux, groups ...Group) {
	walk("", groups, func(pattern string, r Route) {
		mux.HandleFunc(pattern, r.Handler)
	})
}

// Patterns lists the fully qualified mux patterns of groups in
// registration order, e.g. "GET /api/predictions/history".
func Patterns(groups ...Group) []string {
	var out []string
	walk("", groups, func(pattern string, _ Route) {
		out = append(out, pattern)
	})
	return out
}

func walk(parent string, groups []Group, visit func(string, Route)) {
	for _, g := range groups {
		prefix := parent + g.Prefix
		for _, r := range g.Routes {
			visit(r.Method+" "+prefix+r.Pattern, r)
		}
		walk(prefix, g.Children, visit)
	}
}
