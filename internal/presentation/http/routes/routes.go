package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/config"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/dto/response"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/handler"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/middleware"
	"github.com/sangkips/salesreport-charts/pkg/apperror"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Chart     *handler.ChartHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	Logger      *zap.Logger
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(handler.Templates())

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":   "ok",
			"service":  deps.Cfg.App.Name,
			"upstream": deps.Cfg.Upstream.BaseURL,
		}
		if deps.RateLimiter != nil {
			body["rate_limiter"] = deps.RateLimiter.Stats()
		}
		c.JSON(http.StatusOK, body)
	})

	// Every route below renders charts from the aggregate endpoint
	rendered := router.Group("")
	if deps.RateLimiter != nil {
		rendered.Use(deps.RateLimiter.Middleware())
	}

	rendered.GET("/sales_reports", h.Dashboard.SalesReports)

	v1 := rendered.Group("/api/v1")
	{
		registerChartRoutes(v1, h)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound)
	})

	return router
}

func registerChartRoutes(v1 *gin.RouterGroup, h *Handlers) {
	charts := v1.Group("/charts")
	{
		charts.GET("", h.Chart.List)
		charts.GET("/:kind", h.Chart.Get)
	}

	v1.GET("/export/xlsx", h.Chart.Export)
}
