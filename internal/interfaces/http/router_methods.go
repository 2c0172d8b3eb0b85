package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/interfaces/http/middleware"
	"github.com/pawpath/pawpath/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.RequestLogger(c.log.With("component", "http"), c.metrics))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	routes.SetupOpsRoutes(c.engine, &routes.OpsRouteConfig{
		HealthHandler: c.hdlrs.healthHandler,
		Gatherer:      c.gatherer,
	})

	// Storage-bound routes only; /metrics and /health keep their own limits.
	c.engine.Use(middleware.StorageDeadline(c.cfg.ContentCache.StorageTimeout))

	var writeLimit gin.HandlerFunc
	if c.redis != nil && c.cfg.RateLimit.Enabled {
		writeLimit = middleware.NewRateLimiter(c.redis, "content-cache-write",
			c.cfg.RateLimit.Requests, c.cfg.RateLimit.Window, c.clock, c.log.With("component", "ratelimit")).Limit()
	}

	routes.SetupContentCacheRoutes(c.engine, &routes.ContentCacheRouteConfig{
		ContentCacheHandler: c.hdlrs.contentCacheHandler,
		WriteLimit:          writeLimit,
	})
	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		BusinessHandler: c.hdlrs.businessHandler,
	})
}
