package router

import (
	"github.com/gin-gonic/gin"

	"remitscan/internal/config"
	"remitscan/internal/handler"
	"remitscan/internal/metrics"
	"remitscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, extractH *handler.ExtractHandler, healthH *handler.HealthHandler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/health", healthH.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.POST("/extract", extractH.Extract)

	// Everything else gets the static landing page.
	r.NoRoute(handler.Landing)

	return r
}
