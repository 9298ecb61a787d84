package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/metaquant/engel-landing/config"
	"github.com/metaquant/engel-landing/internal/catalog"
	"github.com/metaquant/engel-landing/internal/handlers"
	"github.com/metaquant/engel-landing/internal/server"
	"github.com/metaquant/engel-landing/internal/services"
	"github.com/metaquant/engel-landing/pkg/logger"
	"github.com/metaquant/engel-landing/pkg/metrics"
	"github.com/metaquant/engel-landing/pkg/profiling"
	"github.com/metaquant/engel-landing/pkg/storage"
	"github.com/metaquant/engel-landing/pkg/tracing"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting EA Golden Engel landing",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracerShutdown, err := tracing.InitTracer(ctx, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics(ctx.Done())

	// The catalog is built once and shared read-only by every request
	reviewCatalog, err := catalog.Default()
	if err != nil {
		logger.Fatal("Invalid review catalog", zap.Error(err))
	}

	reviewService, err := services.NewReviewService(reviewCatalog, cfg.Reviews)
	if err != nil {
		logger.Fatal("Invalid review sampling configuration",
			zap.Int("min", cfg.Reviews.MinPerRequest),
			zap.Int("max", cfg.Reviews.MaxPerRequest),
			zap.Int("catalog_size", reviewCatalog.Len()),
			zap.Error(err))
	}

	downloadService := services.NewPlaceholderDownloadService()
	if cfg.Download.Enabled() {
		storageClient, err := storage.NewClient(cfg.Download)
		if err != nil {
			logger.Fatal("Failed to initialize download storage", zap.Error(err))
		}
		downloadService = services.NewDownloadService(storageClient, cfg.Download.Key,
			time.Duration(cfg.Download.LinkTTLMinutes)*time.Minute)
	} else {
		logger.Warn("Download storage not configured: /download returns a placeholder")
	}

	router, err := server.NewRouter(ctx, cfg, server.Handlers{
		Landing:  handlers.NewLandingHandler(downloadService.Enabled()),
		Reviews:  handlers.NewReviewHandler(reviewService),
		Download: handlers.NewDownloadHandler(downloadService),
		Health:   handlers.NewHealthHandler(reviewCatalog.Len),
	})
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
