package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/Andre-Diamond/scripts-for-scraps/pkg/validator"

	"github.com/Andre-Diamond/scripts-for-scraps/internal/adapter/handler"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/adapter/repository"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/infrastructure/cache"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/infrastructure/database"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/infrastructure/external/github"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/infrastructure/storage"
	syncUsecase "github.com/Andre-Diamond/scripts-for-scraps/internal/usecase/sync"
	"github.com/Andre-Diamond/scripts-for-scraps/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping startup migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	summaryRepo := repository.NewSummaryRepository(db, logger)
	cachedSummaries := cache.NewCachedSummaryRepository(summaryRepo, redisClient, cfg.Redis.SummaryTTL, logger)

	// Initialize GitHub content source
	log.Println("📚 Initializing GitHub content source...")
	contentStore := cache.NewMemoryStore()
	githubClient := github.NewClient(&cfg.GitHub, contentStore, logger)
	if cfg.GitHub.Token == "" {
		log.Println("⚠️  GITHUB_TOKEN not set; commits to the target repository will fail")
	}

	// Initialize artifact storage
	log.Println("🗄️  Initializing artifact storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	// Initialize sync service
	log.Println("🔀 Initializing sync service...")
	syncService := syncUsecase.NewService(githubClient, cachedSummaries, minioClient, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	syncHandler := handler.NewSyncHandler(syncService, logger)
	router := handler.NewRouter(cfg, syncHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
