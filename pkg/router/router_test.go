package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func doRequest(t *testing.T, r *Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("ok"))
	})

	rec := doRequest(t, r, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("Unexpected body: %q", rec.Body.String())
	}
}

func TestWildcardRoute(t *testing.T) {
	r := New()
	r.GET("/runs/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("run"))
	})

	rec := doRequest(t, r, http.MethodGet, "/runs/abc-123")
	if rec.Code != http.StatusOK || rec.Body.String() != "run" {
		t.Fatalf("Expected wildcard match, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestDeeperWildcardWins(t *testing.T) {
	r := New()
	r.GET("/runs/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("run"))
	})
	r.GET("/runs/*/errors", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("errors"))
	})

	// Repeat to catch map-iteration luck.
	for i := 0; i < 20; i++ {
		rec := doRequest(t, r, http.MethodGet, "/runs/abc-123/errors")
		if rec.Body.String() != "errors" {
			t.Fatalf("Expected the deeper route to win, got %q", rec.Body.String())
		}
	}
}

func TestExactRouteBeatsWildcard(t *testing.T) {
	r := New()
	r.GET("/runs/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("wildcard"))
	})
	r.GET("/runs/latest", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exact"))
	})

	rec := doRequest(t, r, http.MethodGet, "/runs/latest")
	if rec.Body.String() != "exact" {
		t.Fatalf("Expected exact match, got %q", rec.Body.String())
	}
}

func TestNotFound(t *testing.T) {
	r := New()
	r.GET("/health", func(w http.ResponseWriter, req *http.Request) {})

	rec := doRequest(t, r, http.MethodGet, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/health", func(w http.ResponseWriter, req *http.Request) {})

	rec := doRequest(t, r, http.MethodPost, "/health")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected 405, got %d", rec.Code)
	}
}

func TestMatchWildcard(t *testing.T) {
	cases := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/runs/abc", "/runs/*", true},
		{"/runs/abc/errors", "/runs/*/errors", true},
		{"/runs/abc/extra", "/runs/*/errors", false},
		{"/runs", "/runs/*", true}, // trailing * also matches zero segments
		{"/swagger/index.html", "/swagger/*", true},
		{"/swagger/doc/swagger.json", "/swagger/*", true},
		{"/other/abc", "/runs/*", false},
	}

	for _, c := range cases {
		if got := matchWildcard(c.path, c.pattern); got != c.want {
			t.Errorf("matchWildcard(%q, %q) = %v, want %v", c.path, c.pattern, got, c.want)
		}
	}
}
