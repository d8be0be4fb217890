package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salesboard/backend/internal/application/analytics"
	"github.com/salesboard/backend/internal/infrastructure/cache"
	"github.com/salesboard/backend/internal/infrastructure/config"
	"github.com/salesboard/backend/internal/infrastructure/logger"
	"github.com/salesboard/backend/internal/infrastructure/persistence"
	"github.com/salesboard/backend/internal/infrastructure/strategy"
	"github.com/salesboard/backend/internal/interfaces/http/handler"
	"github.com/salesboard/backend/internal/interfaces/http/middleware"
	"github.com/salesboard/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting salesboard backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Strategy registry with built-in strategies
	registry, err := strategy.NewDefaultRegistry()
	if err != nil {
		log.Fatal("Failed to initialize strategy registry", zap.Error(err))
	}

	// Report cache (optional)
	var reportCache analytics.ReportCache
	if cfg.Report.CacheEnabled {
		switch cfg.Report.CacheBackend {
		case "redis":
			redisCache, err := cache.NewRedisReportCache(cache.RedisConfig{
				Host:     cfg.Redis.Host,
				Port:     cfg.Redis.Port,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}, log)
			if err != nil {
				log.Fatal("Failed to connect to Redis", zap.Error(err))
			}
			defer func() {
				_ = redisCache.Close()
			}()
			reportCache = redisCache
			log.Info("Report cache enabled", zap.String("backend", "redis"))
		case "memory":
			memCache := cache.NewInMemoryReportCache()
			defer func() {
				_ = memCache.Close()
			}()
			reportCache = memCache
			log.Info("Report cache enabled", zap.String("backend", "memory"))
		}
	}

	// Application services
	snapshotRepo := persistence.NewGormSnapshotRepository(db.DB)
	reportService := analytics.NewReportService(snapshotRepo, registry, reportCache, cfg.Report.CacheTTL, log)

	// HTTP handlers
	reportHandler := handler.NewReportHandler(reportService)
	datasetHandler := handler.NewDatasetHandler(reportService)
	strategyHandler := handler.NewStrategyHandler(registry)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack order: request ID, panic recovery, request logging, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(reportHandler)
	r.Register(datasetHandler)
	r.Register(strategyHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
