package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawpath/pawpath/internal/interfaces/http/handlers"
)

// OpsRouteConfig holds dependencies for health and metrics routes.
type OpsRouteConfig struct {
	HealthHandler *handlers.HealthHandler
	Gatherer      prometheus.Gatherer
}

// SetupOpsRoutes configures health and metrics routes.
func SetupOpsRoutes(engine *gin.Engine, cfg *OpsRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.HealthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
}
