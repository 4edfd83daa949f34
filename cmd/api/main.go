package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/config"
	"github.com/sangkips/salesreport-charts/internal/infrastructure/repository"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/handler"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/middleware"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/routes"
	"github.com/sangkips/salesreport-charts/pkg/logger"
)

func main() {
	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" || !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router, shutdown := newServer(cfg, logger.Log)
	defer shutdown()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// newServer wires the repository, handlers and middleware into a router.
// The returned func stops background workers.
func newServer(cfg *config.Config, log *zap.Logger) (*gin.Engine, func()) {
	// Aggregate endpoint client
	client := cfg.Upstream.NewClient(log)
	chartRepo := repository.NewChartDataRepository(client, cfg.Upstream.DataPath)

	rateLimiter := middleware.NewClientRateLimiter(
		middleware.RateLimiterConfigFromWindow(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Chart:     handler.NewChartHandler(chartRepo, log),
		Dashboard: handler.NewDashboardHandler(chartRepo, log),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:         cfg,
		Logger:      log,
		RateLimiter: rateLimiter,
	})

	return router, rateLimiter.Stop
}
