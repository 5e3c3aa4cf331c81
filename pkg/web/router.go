package web

import (
	"net/http"

	"github.com/JaimeStill/verdant/pkg/routes"
)

// Router is a ServeMux that hands unmatched requests to an optional
// fallback, typically a rendered not-found page.
type Router struct {
	*http.ServeMux
	fallback http.Handler
}

func NewRouter() *Router {
	return &Router{ServeMux: http.NewServeMux()}
}

// SetFallback sets the handler for requests no pattern matches.
// A nil handler restores the mux default.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	if handler == nil {
		r.fallback = nil
		return
	}
	r.fallback = handler
}

// Routes registers each route under its method-qualified pattern.
func (r *Router) Routes(list ...routes.Route) {
	for _, route := range list {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.Handler(req); pattern == "" {
			r.fallback.ServeHTTP(w, req)
			return
		}
	}
	r.ServeMux.ServeHTTP(w, req)
}
