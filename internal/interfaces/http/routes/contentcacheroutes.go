package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/interfaces/http/handlers"
)

// ContentCacheRouteConfig holds dependencies for content cache routes.
type ContentCacheRouteConfig struct {
	ContentCacheHandler *handlers.ContentCacheHandler
	// WriteLimit guards writes and lease acquisition; nil disables it.
	WriteLimit gin.HandlerFunc
}

// SetupContentCacheRoutes configures content cache routes.
func SetupContentCacheRoutes(engine *gin.Engine, cfg *ContentCacheRouteConfig) {
	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.WriteLimit == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{cfg.WriteLimit, h}
	}

	entries := engine.Group("/content-cache/:contentType/:subjectId/:locale")
	{
		entries.GET("", cfg.ContentCacheHandler.GetContent)
		entries.PUT("", limited(cfg.ContentCacheHandler.PutContent)...)
		entries.DELETE("", cfg.ContentCacheHandler.DeleteContent)

		entries.GET("/html", cfg.ContentCacheHandler.RenderContent)

		// Leases for generation pipelines running outside this service
		entries.POST("/lease", limited(cfg.ContentCacheHandler.AcquireLease)...)
		entries.DELETE("/lease", cfg.ContentCacheHandler.ReleaseLease)
	}
}
