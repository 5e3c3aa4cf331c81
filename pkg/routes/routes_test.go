package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/verdant/pkg/routes"
)

func echo(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(r.Pattern))
}

func TestRegisterHandlers(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/history",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: echo},
			{Method: "GET", Pattern: "/summary", Handler: echo},
			{Method: "POST", Pattern: "/archive", Handler: echo},
			{Method: "GET", Pattern: "/archive/{key...}", Handler: echo},
		},
	})

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"list", "GET", "/history", http.StatusOK, "GET /history"},
		{"summary", "GET", "/history/summary", http.StatusOK, "GET /history/summary"},
		{"archive", "POST", "/history/archive", http.StatusOK, "POST /history/archive"},
		{"download nested key", "GET", "/history/archive/history/2026/riwayat.csv", http.StatusOK, "GET /history/archive/{key...}"},
		{"wrong method", "DELETE", "/history/summary", http.StatusMethodNotAllowed, ""},
		{"unknown", "GET", "/history/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("pattern: got %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNestedGroups(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/api",
		Children: []routes.Group{
			{
				Prefix: "/predictions",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: echo},
					{Method: "GET", Pattern: "/categories", Handler: echo},
				},
			},
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/predictions/categories", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("nested route: got %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "GET /api/predictions/categories" {
		t.Errorf("pattern: got %q", got)
	}
}

func TestPatterns(t *testing.T) {
	got := routes.Patterns(routes.Group{
		Prefix: "/api",
		Routes: []routes.Route{{Method: "GET", Pattern: "/healthz", Handler: echo}},
		Children: []routes.Group{{
			Prefix: "/predictions",
			Routes: []routes.Route{
				{Method: "POST", Pattern: "", Handler: echo},
				{Method: "GET", Pattern: "/categories", Handler: echo},
			},
		}},
	})

	want := []string{
		"GET /api/healthz",
		"POST /api/predictions",
		"GET /api/predictions/categories",
	}
	if len(got) != len(want) {
		t.Fatalf("patterns: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("patterns[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}
