package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inframe/campus-portal/internal/api"
	"github.com/inframe/campus-portal/internal/catalog"
	"github.com/inframe/campus-portal/internal/cleanup"
	"github.com/inframe/campus-portal/internal/config"
	"github.com/inframe/campus-portal/internal/session"
	"github.com/inframe/campus-portal/internal/storage"
	"github.com/inframe/campus-portal/internal/views"
	"github.com/inframe/campus-portal/pkg/client"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting campus-portal",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"backend", cfg.Backend.APIBaseURL,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	repo, err := openRepository(initCtx, cfg.Database)
	if err != nil {
		slog.Error("failed to open submission store", "error", err)
		os.Exit(1)
	}

	sessions, err := openSessions(cfg.Redis)
	if err != nil {
		slog.Error("failed to open session store", "error", err)
		os.Exit(1)
	}

	// Backend client; tokens live in the per-visitor session store
	opts := []client.Option{
		client.WithTimeout(cfg.Backend.Timeout),
		client.WithSession(sessions),
		client.WithLogger(logger),
	}
	if cfg.Backend.Dedup {
		opts = append(opts, client.WithDeduplication())
	}
	backend := client.NewClient(cfg.Backend.URL, cfg.Backend.APIBaseURL, opts...)

	// Load static content
	content := catalog.NewLoader()
	if err := content.LoadFromDir(cfg.Content.Dir); err != nil {
		slog.Warn("failed to load content from dir", "dir", cfg.Content.Dir, "error", err)
	}

	pages := views.NewPages(backend, content, logger)
	forms := views.NewForms(backend, repo, logger)

	// Initialize retention worker
	pruner := cleanup.NewPruner(repo, cfg.Cleanup.Interval, cfg.Cleanup.Retention)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pruner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, backend, pages, forms, repo, sessions)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()
	pruner.Wait()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := sessions.Close(); err != nil {
		slog.Error("session store close error", "error", err)
	}
	if err := repo.Close(); err != nil {
		slog.Error("submission store close error", "error", err)
	}

	slog.Info("campus-portal stopped")
}

// openRepository connects to PostgreSQL and migrates it, or falls back to
// memory when no DSN is configured
func openRepository(ctx context.Context, cfg config.DatabaseConfig) (storage.Repository, error) {
	if cfg.DSN == "" {
		slog.Warn("DATABASE_DSN not set, keeping submissions in memory")
		return storage.NewMemoryRepository(), nil
	}

	repo, err := storage.NewPostgresRepository(ctx, storage.PostgresConfig{
		DSN:          cfg.DSN,
		MaxOpenConns: int32(cfg.MaxOpenConns),
		MaxIdleConns: int32(cfg.MaxIdleConns),
	})
	if err != nil {
		return nil, err
	}

	slog.Info("running database migrations", "dir", cfg.MigrationsDir)
	if err := storage.RunMigrations(ctx, repo.Pool(), storage.MigrationSource(cfg.MigrationsDir)); err != nil {
		repo.Close()
		return nil, err
	}

	slog.Info("database connected successfully")
	return repo, nil
}

func openSessions(cfg config.RedisConfig) (session.Store, error) {
	if cfg.Address == "" {
		slog.Warn("REDIS_ADDRESS not set, keeping sessions in memory")
		return session.NewMemoryStore(), nil
	}

	store, err := session.NewRedisStore(cfg.Address, cfg.Password, cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("redis connected successfully", "address", cfg.Address)
	return store, nil
}
