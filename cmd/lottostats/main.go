package main

//go:generate swag init -g cmd/lottostats/main.go -d ../.. -o ../../internal/docs --outputTypes go

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/projecthelena/lottostats/internal/api"
	"github.com/projecthelena/lottostats/internal/config"
	"github.com/projecthelena/lottostats/internal/db"
	"github.com/projecthelena/lottostats/internal/logging"
)

// @title        Lotto Max Stats API
// @version      1.0
// @description  Read-only statistics over Lotto Max draw results.
// @BasePath     /api
func main() {
	logger := logging.New("lottostats")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.Fatalf("configure logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.NewStore(db.ConfigFrom(cfg))
	if err != nil {
		logger.Fatalf("Failed to init database: %v", err)
	}
	defer func() { _ = store.Close() }()

	if cfg.DBMigrate {
		if err := store.Migrate(ctx); err != nil {
			logger.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Info("Database migrations applied")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(store, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server is running on http://localhost:%s", listenPort(cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exiting")
}

func listenPort(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}
