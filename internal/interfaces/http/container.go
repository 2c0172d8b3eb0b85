package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/infrastructure/config"
	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/shared/biztime"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, services and
// handlers, wires them together and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	log      logger.Interface
	redis    *redis.Client
	ownRedis bool
	clock    biztime.Clock

	// Metrics
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	metrics    *metrics.Metrics

	repos    *repositories
	services *allServices
	hdlrs    *allHandlers
}

// ContainerOption customizes the container, mostly for tests.
type ContainerOption func(*Container)

// WithRegistry registers metrics on reg and serves them from it instead of
// the process-wide default registry.
func WithRegistry(reg *prometheus.Registry) ContainerOption {
	return func(c *Container) {
		c.registerer = reg
		c.gatherer = reg
	}
}

// WithRedisClient uses an existing client for regeneration leases. The
// container does not close it.
func WithRedisClient(client *redis.Client) ContainerOption {
	return func(c *Container) {
		c.redis = client
	}
}

// WithClock replaces the wall clock used for staleness and leases.
func WithClock(now biztime.Clock) ContainerOption {
	return func(c *Container) {
		c.clock = now
	}
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		clock:  biztime.NowUTC,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.repos = newRepositories(db)
	if err := c.initServices(); err != nil {
		c.closeRedis()
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine with all routes registered.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections owned by the container.
func (c *Container) Shutdown(ctx context.Context) {
	c.closeRedis()
	c.log.Infow("http container shut down")
}

func (c *Container) closeRedis() {
	if c.redis == nil || !c.ownRedis {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}
