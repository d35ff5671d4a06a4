package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/services"
	"github.com/frigosaas/frigo-backend/internal/handlers"
	"github.com/frigosaas/frigo-backend/internal/middleware"
	"github.com/frigosaas/frigo-backend/internal/platform/cache"
	"github.com/frigosaas/frigo-backend/internal/platform/config"
	"github.com/frigosaas/frigo-backend/internal/platform/storage"
	"github.com/frigosaas/frigo-backend/internal/repositories/database/pgsql"
	"github.com/frigosaas/frigo-backend/internal/utils"
	"github.com/frigosaas/frigo-backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Frigo Backend API
// @version 1.0
// @description Multi-tenant cold-storage warehouse backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Overview cache is optional: without Redis the register dashboard hits
	// the database on every poll.
	var overviewCache portssvc.OverviewCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisOverviewCache(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.OverviewTTL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		overviewCache = redisCache
		logger.Info("Overview cache connected", slog.String("addr", cfg.RedisAddr))
	}

	// Receipt storage is optional: without a bucket the upload endpoint
	// answers 503.
	var receiptStorage portssvc.ReceiptStorageSvc
	if cfg.GCSBucket != "" {
		gcsStorage, err := storage.NewGCSReceiptStorage(context.Background(), cfg.GCSBucket)
		if err != nil {
			logger.Error("Failed to initialize receipt storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer gcsStorage.Close()
		receiptStorage = gcsStorage
		logger.Info("Receipt storage initialized", slog.String("bucket", cfg.GCSBucket))
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.Metrics())
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, overviewCache, receiptStorage)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

// runMigrations applies all pending database migrations through a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
