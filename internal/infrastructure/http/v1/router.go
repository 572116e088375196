// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"mystore/internal/app"
	"mystore/internal/infrastructure/http/v1/handlers"
	"mystore/internal/infrastructure/http/v1/middleware"
	"mystore/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// App carries the wired services and the store gateway
	App *app.App

	// Logger for request logging
	Logger *logger.Logger

	// Development enables gin debug mode
	Development bool

	// Version reported by /health/info
	Version string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!). Recovery sits inside ErrorHandler
	// so a recovered panic is still rendered as JSON.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	driver := ""
	if cfg.App.Config != nil {
		driver = cfg.App.Config.StoreDriver
	}
	healthHandler := handlers.NewHealthHandler(cfg.App.Gateway, driver, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	v1 := router.Group("/api/v1")
	base := handlers.NewBaseHandler()

	handlers.NewProductHandler(base, cfg.App.Products).RegisterRoutes(v1.Group("/products"))
	handlers.NewSaleHandler(base, cfg.App.Sales).RegisterRoutes(v1.Group("/sales"))
	handlers.NewStockHandler(base, cfg.App.Stock).RegisterRoutes(v1.Group("/stock"))
	handlers.NewReportsHandler(base, cfg.App.Reports).RegisterRoutes(v1.Group("/reports"))

	return router
}
