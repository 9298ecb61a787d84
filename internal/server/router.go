package server

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/metaquant/engel-landing/config"
	"github.com/metaquant/engel-landing/internal/handlers"
	"github.com/metaquant/engel-landing/internal/middleware"
	"github.com/metaquant/engel-landing/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Landing  *handlers.LandingHandler
	Reviews  *handlers.ReviewHandler
	Download *handlers.DownloadHandler
	Health   *handlers.HealthHandler
}

// NewRouter builds the gin engine. ctx bounds the lifetime of background
// goroutines owned by the middleware.
func NewRouter(ctx context.Context, cfg *config.Config, h Handlers) (*gin.Engine, error) {
	if cfg.Server.WebDir == "" {
		return nil, fmt.Errorf("web directory is required to serve the landing page")
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Client IPs feed the per-IP rate limiters, so forwarding headers are
	// only honored from configured proxies
	var trustedProxies []string
	if len(cfg.Server.TrustedProxies) > 0 {
		trustedProxies = cfg.Server.TrustedProxies
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := slices.Clone(cfg.Server.AllowedOrigins)
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:"+cfg.Server.Port, "http://127.0.0.1:"+cfg.Server.Port)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", middleware.RequestIDHeader, "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Per-IP limits: requests per second, burst
	pageRateLimiter := middleware.NewRateLimiter(ctx, "page", 20, 40)
	apiRateLimiter := middleware.NewRateLimiter(ctx, "api", 5, 10)
	downloadRateLimiter := middleware.NewRateLimiter(ctx, "download", 1, 5)

	router.LoadHTMLGlob(filepath.Join(cfg.Server.WebDir, "templates", "*.html"))
	router.Static("/static", filepath.Join(cfg.Server.WebDir, "static"))

	router.GET("/", pageRateLimiter.Middleware(), h.Landing.Index)
	router.GET("/download", downloadRateLimiter.Middleware(), h.Download.InitiateDownload)

	api := router.Group("/api")
	api.GET("/reviews", apiRateLimiter.Middleware(), h.Reviews.GetReviews)
	api.GET("/healthcheck", h.Health.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return router, nil
}
