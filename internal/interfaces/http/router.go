package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/infrastructure/config"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter wires the container and registers every route.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface, opts ...ContainerOption) (*Router, error) {
	c, err := NewContainer(db, cfg, log, opts...)
	if err != nil {
		return nil, err
	}
	c.SetupRoutes()
	return &Router{container: c}, nil
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.Engine()
}

// Shutdown releases the router's connections.
func (r *Router) Shutdown(ctx context.Context) {
	r.container.Shutdown(ctx)
}
