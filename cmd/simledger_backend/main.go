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

	"github.com/SscSPs/simcard_ledger/internal/adapters/document/docx"
	"github.com/SscSPs/simcard_ledger/internal/core/services"
	"github.com/SscSPs/simcard_ledger/internal/handlers"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/SscSPs/simcard_ledger/internal/platform/config"
	"github.com/SscSPs/simcard_ledger/internal/repositories/archive"
	"github.com/SscSPs/simcard_ledger/internal/repositories/database/schema"
	"github.com/SscSPs/simcard_ledger/internal/repositories/database/sqlstore"
	"github.com/SscSPs/simcard_ledger/pkg/database"
	"github.com/SscSPs/simcard_ledger/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title SIM Ledger API
// @version 1.0
// @description Bookkeeping API for a SIM card resale business.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...", slog.String("driver", string(cfg.DBDriver)))
	migrator := schema.NewManager(cfg.DBDriver, cfg.DSN(), logger)
	if cfg.MigrateToVersion > 0 {
		err = migrator.Migrate(ctx, cfg.MigrateToVersion)
	} else {
		err = migrator.Initialize(ctx)
	}
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	// --- End Database Migrations ---

	db, closeDB, err := openDatabase(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()
	logger.Info("Database connection established.")

	store, err := archive.NewFileStore(cfg.ArchiveDir)
	if err != nil {
		logger.Error("Failed to prepare contract archive", slog.String("dir", cfg.ArchiveDir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(
		sqlstore.NewRepositoryProvider(db, cfg.DBDriver),
		docx.New(),
		store,
		services.WithLocation(cfg.Location),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		metrics.Handler(),
		middleware.RateLimit(limiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, registry)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	if cfg.DBDriver == database.DialectPostgres {
		return database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	}
	db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
