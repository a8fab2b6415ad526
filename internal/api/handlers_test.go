package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/projecthelena/lottostats/internal/config"
	"github.com/projecthelena/lottostats/internal/db"
)

// fakeStore lets tests inject results and failures the real store cannot produce.
type fakeStore struct {
	draws   []db.Draw
	stats   []db.FrequencyRow
	freq    db.NumberFrequency
	err     error
	pingErr error
	// block makes every query wait for its context to end.
	block bool

	calls int
	lastN int
}

func (f *fakeStore) wait(ctx context.Context) error {
	f.calls++
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeStore) LatestDraws(ctx context.Context, limit int) ([]db.Draw, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.draws, nil
}

func (f *fakeStore) NumberStats(ctx context.Context) ([]db.FrequencyRow, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.stats, nil
}

func (f *fakeStore) NumberFrequency(ctx context.Context, n int) (db.NumberFrequency, error) {
	f.lastN = n
	if err := f.wait(ctx); err != nil {
		return db.NumberFrequency{}, err
	}
	return f.freq, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// setupTest returns a router over a fresh in-memory store seeded with draws.
func setupTest(t *testing.T, draws ...db.Draw) (http.Handler, *db.Store) {
	t.Helper()
	store := db.NewTestStore(t, db.NewTestConfig())
	if len(draws) > 0 {
		if err := store.InsertDraws(context.Background(), draws...); err != nil {
			t.Fatalf("Failed to seed draws: %v", err)
		}
	}

	cfg := config.Default()
	return NewRouter(store, &cfg), store
}

func newFakeRouter(store DrawStore, timeout time.Duration) http.Handler {
	cfg := config.Default()
	cfg.QueryTimeout = timeout
	return NewRouter(store, &cfg)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(w.Result().Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return string(b)
}
