package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/verdant/pkg/middleware"
)

const origin = "http://kebun.example"

func TestCORS(t *testing.T) {
	enabled := middleware.CORSConfig{
		Enabled:        true,
		Origins:        []string{origin},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         600,
	}
	withCreds := enabled
	withCreds.AllowCredentials = true

	tests := []struct {
		name        string
		cfg         middleware.CORSConfig
		method      string
		origin      string
		preflight   bool
		wantNext    bool
		wantStatus  int
		wantHeaders map[string]string
	}{
		{
			name: "disabled", cfg: middleware.CORSConfig{}, method: "GET", origin: origin,
			wantNext: true, wantStatus: http.StatusOK,
			wantHeaders: map[string]string{"Access-Control-Allow-Origin": ""},
		},
		{
			name: "simple request", cfg: enabled, method: "GET", origin: origin,
			wantNext: true, wantStatus: http.StatusOK,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Origin":   origin,
				"Access-Control-Expose-Headers": "Content-Disposition",
				"Vary":                          "Origin",
				"Access-Control-Allow-Methods":  "",
			},
		},
		{
			name: "disallowed origin", cfg: enabled, method: "GET", origin: "http://lain.example",
			wantNext: true, wantStatus: http.StatusOK,
			wantHeaders: map[string]string{"Access-Control-Allow-Origin": "", "Vary": "Origin"},
		},
		{
			name: "preflight", cfg: enabled, method: "OPTIONS", origin: origin, preflight: true,
			wantNext: false, wantStatus: http.StatusNoContent,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Methods": "GET, POST",
				"Access-Control-Allow-Headers": "Content-Type",
				"Access-Control-Max-Age":       "600",
			},
		},
		{
			name: "preflight disallowed origin", cfg: enabled, method: "OPTIONS", origin: "http://lain.example", preflight: true,
			wantNext: true, wantStatus: http.StatusOK,
			wantHeaders: map[string]string{"Access-Control-Allow-Origin": ""},
		},
		{
			name: "credentials", cfg: withCreds, method: "POST", origin: origin,
			wantNext: true, wantStatus: http.StatusOK,
			wantHeaders: map[string]string{"Access-Control-Allow-Credentials": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			h := middleware.CORS(&tt.cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/history/export", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", "POST")
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if reached != tt.wantNext {
				t.Errorf("next reached = %v, want %v", reached, tt.wantNext)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			for k, want := range tt.wantHeaders {
				if got := rec.Header().Get(k); got != want {
					t.Errorf("%s: got %q, want %q", k, got, want)
				}
			}
		})
	}
}
