package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/projecthelena/lottostats/internal/config"
	"github.com/projecthelena/lottostats/internal/db"
)

func TestRoot(t *testing.T) {
	w := get(t, http.HandlerFunc(Root), "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "API is running" {
		t.Errorf("expected liveness text, got %q", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	Healthz(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
	if resp["version"] != Version {
		t.Errorf("expected version %q, got %v", Version, resp["version"])
	}
}

func TestReadyz(t *testing.T) {
	store := db.NewTestStore(t, db.NewTestConfig())

	handler := Readyz(store)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

func TestReadyz_DBDown(t *testing.T) {
	handler := Readyz(&fakeStore{pingErr: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "unavailable" {
		t.Errorf("expected status unavailable, got %v", resp["status"])
	}
}

// TestRouter_Integration drives every public route through a real server,
// covering the middleware chain as well as the handlers.
func TestRouter_Integration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "router-test.db")
	store := db.NewTestStore(t, db.NewTestConfigWithPath(dbPath))
	if err := store.InsertDraws(t.Context(), db.NewDraw("2024-01-01", [7]int{1, 2, 3, 4, 5, 6, 7}, 8)); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	cfg := config.Default()
	cfg.QueryTimeout = 2 * time.Second
	router := NewRouter(store, &cfg)

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := ts.Client()

	tests := []struct {
		name        string
		path        string
		wantStatus  int
		contentType string
	}{
		{"root", "/", http.StatusOK, "text/plain; charset=utf-8"},
		{"healthz", "/healthz", http.StatusOK, "application/json"},
		{"readyz", "/readyz", http.StatusOK, "application/json"},
		{"winning numbers", "/api/winning-numbers", http.StatusOK, "application/json"},
		{"stats", "/api/stats", http.StatusOK, "application/json"},
		{"number stats", "/api/stats/3", http.StatusOK, "application/json"},
		{"invalid number", "/api/stats/abc", http.StatusBadRequest, "application/json"},
		{"swagger doc", "/api/docs/doc.json", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+tt.path, nil)
			if err != nil {
				t.Fatalf("build request: %v", err)
			}
			req.Header.Set("Origin", "https://lotto.example")

			resp, err := client.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); tt.contentType != "" && ct != tt.contentType {
				t.Errorf("expected Content-Type %q, got %q", tt.contentType, ct)
			}
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("expected CORS header *, got %q", got)
			}
			if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("expected nosniff header, got %q", got)
			}
		})
	}
}
