package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/projecthelena/lottostats/internal/config"
	"github.com/projecthelena/lottostats/internal/db"
	_ "github.com/projecthelena/lottostats/internal/docs"
	"github.com/projecthelena/lottostats/internal/logging"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// DrawStore is the read side of the results database the handlers need.
type DrawStore interface {
	LatestDraws(ctx context.Context, limit int) ([]db.Draw, error)
	NumberStats(ctx context.Context) ([]db.FrequencyRow, error)
	NumberFrequency(ctx context.Context, n int) (db.NumberFrequency, error)
	Ping(ctx context.Context) error
}

// SecurityHeaders middleware adds essential security headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the HTTP router serving the stats API.
func NewRouter(store DrawStore, cfg *config.Config) http.Handler {
	logger := logging.New("http")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	drawsH := NewDrawsHandler(store, cfg.QueryTimeout)
	statsH := NewStatsHandler(store, cfg.QueryTimeout)

	r.Get("/", Root)
	r.Get("/healthz", Healthz)
	r.Get("/readyz", Readyz(store))

	r.Route("/api", func(api chi.Router) {
		api.Get("/winning-numbers", drawsH.GetWinningNumbers)
		api.Get("/stats", statsH.GetStats)
		api.Get("/stats/{number}", statsH.GetNumberStats)
		// chi never matches an empty {number}; route it here so it fails validation.
		api.Get("/stats/", statsH.GetNumberStats)

		// API Documentation (Swagger UI)
		api.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api/docs/doc.json"),
		))
	})

	return r
}

// queryContext bounds a store call by the configured timeout. The request
// context is the parent, so a client disconnect also cancels the query.
func queryContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
