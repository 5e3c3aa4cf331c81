// Package middleware provides composable HTTP middleware and the CORS and
// request-logging middleware used by the HTTP modules.
package middleware

import (
	"net/http"
	"slices"
)

// Func wraps a handler with additional behavior.
type Func = func(http.Handler) http.Handler

// System manages an ordered stack of HTTP middleware.
type System interface {
	Use(mw Func)
	Apply(handler http.Handler) http.Handler
}

type stack []Func

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn Func) {
	*s = append(*s, fn)
}

// Apply wraps handler so the first middleware added runs outermost.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for _, mw := range slices.Backward(*s) {
		handler = mw(handler)
	}
	return handler
}
