// Package main is the entry point for the escape-room trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"

	"github.com/p-rusnak/supER/internal/config"
	"github.com/p-rusnak/supER/internal/handler"
	"github.com/p-rusnak/supER/internal/middleware"
	"github.com/p-rusnak/supER/internal/service"
	"github.com/p-rusnak/supER/internal/snapshot"
	"github.com/p-rusnak/supER/internal/store"
	filestore "github.com/p-rusnak/supER/internal/store/file"
	memorystore "github.com/p-rusnak/supER/internal/store/memory"
	pgstore "github.com/p-rusnak/supER/internal/store/postgres"
)

// maxBodyBytes caps request bodies; the largest legitimate payload is a room
// creation form, so 1 MiB is generous.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file feeds the environment in development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger. JSON handler writes
	// machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	kv, cleanup, err := newStore(cfg)
	if err != nil {
		slog.Error("failed to initialize store", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("store ready", "storage", cfg.Storage)

	// --- State ------------------------------------------------------------
	// The catalog loads its snapshot once at startup; absent or malformed
	// entries come back as empty state, so a fresh install just starts empty.
	snaps := snapshot.New(kv, logger)
	catalog := service.NewCatalog(snaps)
	if err := catalog.Load(context.Background()); err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}

	srv := handler.NewServer(catalog, service.NewPlanner())

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
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
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
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newStore builds the snapshot backend selected by STORAGE.
// The returned cleanup releases whatever the backend holds open.
func newStore(cfg config.Config) (store.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage {
	case config.StorageMemory:
		return memorystore.New(), noop, nil

	case config.StorageFile:
		s, err := filestore.New(cfg.DataDir)
		return s, noop, err

	case config.StoragePostgres:
		// Migrations run through database/sql (goose's native interface);
		// regular traffic goes through the pool.
		sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := pgstore.Migrate(context.Background(), sqlDB); err != nil {
			sqlDB.Close()
			return nil, noop, err
		}
		sqlDB.Close()

		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return pgstore.New(pool), pool.Close, nil

	default:
		// config.Load already rejects unknown values; unreachable.
		return nil, noop, errors.New("unknown storage backend")
	}
}
