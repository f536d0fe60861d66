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

	activityapp "github.com/ashobox/backoffice/internal/application/activity"
	"github.com/ashobox/backoffice/internal/application/moderation"
	payoutapp "github.com/ashobox/backoffice/internal/application/payout"
	reportapp "github.com/ashobox/backoffice/internal/application/report"
	"github.com/ashobox/backoffice/internal/infrastructure/config"
	"github.com/ashobox/backoffice/internal/infrastructure/logger"
	"github.com/ashobox/backoffice/internal/infrastructure/marketplace"
	"github.com/ashobox/backoffice/internal/interfaces/http/handler"
	"github.com/ashobox/backoffice/internal/interfaces/http/middleware"
	"github.com/ashobox/backoffice/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewForEnvironment(cfg.App.Env, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Ashobox Back Office",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Single outbound adapter: all reads and writes go to the marketplace
	// data service
	client := marketplace.NewClient(cfg.Marketplace)

	// Application services
	reportService := reportapp.NewService(client, log)
	moderationService := moderation.NewService(client, client, log)
	payoutService := payoutapp.NewService(client, client, log)
	activityService := activityapp.NewService(client)

	// HTTP handlers
	reportHandler := handler.NewReportHandler(reportService)
	productHandler := handler.NewProductHandler(moderationService)
	payoutHandler := handler.NewPayoutHandler(payoutService)
	activityHandler := handler.NewActivityHandler(activityService)
	systemHandler := handler.NewSystemHandler(client, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. Metrics - Record request counts and latency
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.Metrics())

	// Register API routes
	router.NewRouter(engine).
		Register(reportHandler).
		Register(productHandler).
		Register(payoutHandler).
		Register(activityHandler).
		Register(systemHandler).
		Setup()

	// Operational endpoints outside the versioned API
	engine.GET("/health", systemHandler.Health)
	engine.GET("/metrics", middleware.MetricsHandler())

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
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
