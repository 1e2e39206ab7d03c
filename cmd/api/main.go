package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/odalys-dev/pennybook/internal/backup"
	"github.com/odalys-dev/pennybook/internal/category"
	"github.com/odalys-dev/pennybook/internal/infra/memory"
	infraPostgres "github.com/odalys-dev/pennybook/internal/infra/postgres"
	infraRedis "github.com/odalys-dev/pennybook/internal/infra/redis"
	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/internal/prefs"
	"github.com/odalys-dev/pennybook/internal/storage"
	"github.com/odalys-dev/pennybook/internal/transport/httpapi"
	"github.com/odalys-dev/pennybook/internal/transport/httpapi/handler"
	"github.com/odalys-dev/pennybook/pkg/config"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

func main() {
	// Create context that listens for termination signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewDefault(cfg.Env)
	log.Info("Starting Pennybook API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"storage", cfg.StorageBackend,
	)

	// Initialize the durable KV backend
	var kv storage.KV
	var pingStorage handler.StoragePinger

	switch cfg.StorageBackend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		kv = infraRedis.NewKV(redisClient, log)
		pingStorage = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		log.Info("Redis connection established")

	case config.BackendPostgres:
		db, err := infraPostgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pgKV := infraPostgres.NewKV(db, log)
		if err := pgKV.EnsureSchema(ctx); err != nil {
			log.Error("Failed to prepare kv table", "error", err)
			os.Exit(1)
		}
		kv = pgKV
		pingStorage = db.Health
		log.Info("Database connection established")

	case config.BackendMemory:
		kv = memory.NewKV()
		log.Warn("Using in-memory storage, data will not survive a restart")
	}

	// Load the category taxonomy once; an unreachable source degrades to the
	// built-in fallback inside the resolver.
	var categorySource category.Source
	if cfg.CategoryConfigURL != "" {
		categorySource = category.NewHTTPSource(cfg.CategoryConfigURL)
	}
	resolver := category.NewResolver(ctx, categorySource, log)

	// Initialize services
	store := ledger.NewStore(kv, log)
	store.Load(ctx)
	prefsSvc := prefs.NewService(kv, log)
	backupSvc := backup.NewService(store, resolver, prefsSvc, log)

	// Determine allowed origins for CORS
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		allowedOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}

	// Create HTTP router
	r := httpapi.NewRouter(httpapi.Config{
		Logger:             log,
		AllowedOrigins:     allowedOrigins,
		HealthHandler:      handler.NewHealthHandler(pingStorage),
		TransactionHandler: handler.NewTransactionHandler(store),
		StatsHandler:       handler.NewStatsHandler(store),
		CategoryHandler:    handler.NewCategoryHandler(resolver),
		PrefsHandler:       handler.NewPrefsHandler(prefsSvc),
		BackupHandler:      handler.NewBackupHandler(backupSvc),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}
