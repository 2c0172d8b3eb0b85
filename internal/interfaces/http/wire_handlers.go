package http

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	contentCacheHandler *handlers.ContentCacheHandler
	businessHandler     *handlers.BusinessHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	var redisPinger handlers.Pinger
	if c.redis != nil {
		client := c.redis
		redisPinger = handlers.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}

	c.hdlrs = &allHandlers{
		contentCacheHandler: handlers.NewContentCacheHandler(
			c.services.contentCache, c.services.regenerator, c.log.With("component", "contentcache_handler"),
		),
		businessHandler: handlers.NewBusinessHandler(c.services.business, c.log.With("component", "business_handler")),
		healthHandler:   handlers.NewHealthHandler(gormPinger(c.db), redisPinger, c.log),
	}
}

func gormPinger(db *gorm.DB) handlers.Pinger {
	return handlers.PingFunc(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}
