// Package main is the entry point for the carpool ledger API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jmonteiro/carpool-ledger/internal/config"
	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/handler"
	"github.com/jmonteiro/carpool-ledger/internal/middleware"
	"github.com/jmonteiro/carpool-ledger/internal/repo"
	"github.com/jmonteiro/carpool-ledger/internal/service"
	"github.com/jmonteiro/carpool-ledger/internal/store"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	// The file store seeds the three documents on first run (admin user,
	// empty trips, empty session). A memory store sits behind it as the
	// fallback tier: a disk outage degrades persistence instead of taking
	// the API down.
	fileStore, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		slog.Error("failed to initialize data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	st := store.NewTieredStore(fileStore, store.NewMemoryStore(), logger)
	slog.Info("document store ready", "dir", cfg.DataDir)

	// --- Repos and services ----------------------------------------------
	users := repo.NewUserRepo(st)
	trips := repo.NewTripRepo(st)
	sessions := repo.NewSessionRepo(st)
	auth := service.NewAuthService(users, sessions)
	docs := service.NewDocumentService(st, users)

	startCtx := context.Background()

	// Restore a persisted session from a previous run, if any. The stored
	// identity is trusted without re-validating credentials.
	if sess, err := auth.Restore(startCtx); err == nil {
		slog.Info("restored persisted session", "username", sess.Username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("could not restore persisted session", "error", err)
	}

	if all, err := trips.List(startCtx); err == nil {
		slog.Info("trip ledger loaded", "trips", len(all))
	} else {
		slog.Warn("could not read trip ledger", "error", err)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(docs).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
