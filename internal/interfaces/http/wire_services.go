package http

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	businessApp "github.com/pawpath/pawpath/internal/application/business"
	contentCacheApp "github.com/pawpath/pawpath/internal/application/contentcache"
	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/infrastructure/cache"
	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/infrastructure/render"
	"github.com/pawpath/pawpath/internal/infrastructure/schema"
)

const redisPingTimeout = 5 * time.Second

// allServices holds the application services the handlers depend on.
type allServices struct {
	contentCache *contentCacheApp.Service
	regenerator  *contentCacheApp.Regenerator
	business     *businessApp.Service
	leases       contentcache.LeaseManager
}

func (c *Container) initInfrastructure() error {
	if c.registerer == nil {
		c.metrics = metrics.Default()
		c.gatherer = prometheus.DefaultGatherer
	} else {
		c.metrics = metrics.New(c.registerer)
	}

	if c.redis == nil && c.cfg.Redis.Enabled {
		client, err := initRedis(c.cfg.Redis.GetAddr(), c.cfg.Redis.Password, c.cfg.Redis.DB)
		if err != nil {
			return err
		}
		c.redis = client
		c.ownRedis = true
		c.log.Infow("Redis connection established successfully", "addr", c.cfg.Redis.GetAddr())
	}
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (c *Container) initServices() error {
	ccCfg := c.cfg.ContentCache

	registry, err := schema.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to load payload schemas: %w", err)
	}

	// Leases fall back to process-local when redis is off; that only
	// coordinates generators within this instance.
	var leases contentcache.LeaseManager
	if c.redis != nil {
		leases = cache.NewRedisRegenerationLease(c.redis)
	} else {
		c.log.Warnw("redis disabled, regeneration leases are local to this process")
		leases = cache.NewMemoryRegenerationLease(c.clock)
	}

	fallbackCapacity := ccCfg.FallbackCapacity
	if fallbackCapacity <= 0 {
		fallbackCapacity = cache.DefaultFallbackCapacity
	}
	fallbackTTL := ccCfg.FallbackTTL
	if fallbackTTL <= 0 {
		fallbackTTL = cache.DefaultFallbackTTL
	}

	contentCache, err := contentCacheApp.NewService(
		contentCacheApp.Config{
			CurrentVersion: ccCfg.AIVersion,
			ThresholdDays:  ccCfg.StalenessThresholdDays,
			StorageTimeout: ccCfg.StorageTimeout,
		},
		c.repos.contentCacheRepo,
		registry,
		c.log.With("component", "contentcache"),
		contentCacheApp.WithClock(c.clock),
		contentCacheApp.WithFallbackStore(cache.NewLastKnownStore(fallbackCapacity, fallbackTTL)),
		contentCacheApp.WithRenderer(render.NewArticleRenderer()),
		contentCacheApp.WithMetrics(c.metrics),
	)
	if err != nil {
		return fmt.Errorf("failed to create content cache service: %w", err)
	}

	c.services = &allServices{
		contentCache: contentCache,
		regenerator: contentCacheApp.NewRegenerator(
			contentCache, leases, ccCfg.LeaseTTL, c.metrics, c.log.With("component", "regenerator"),
		),
		business: businessApp.NewService(c.repos.businessRepo, c.metrics, c.log.With("component", "business")),
		leases:   leases,
	}

	c.log.Infow("content cache configured",
		"ai_version", ccCfg.AIVersion,
		"staleness_threshold_days", ccCfg.StalenessThresholdDays,
		"storage_timeout", ccCfg.StorageTimeout,
	)
	return nil
}
