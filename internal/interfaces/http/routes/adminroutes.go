package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/interfaces/http/handlers"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	BusinessHandler *handlers.BusinessHandler
}

// SetupAdminRoutes configures admin routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	{
		businesses := admin.Group("/businesses")
		businesses.GET("", cfg.BusinessHandler.ListBusinesses)
		businesses.GET("/:id", cfg.BusinessHandler.GetBusiness)
		businesses.PATCH("/:id", cfg.BusinessHandler.ApplyAction)
	}
}
