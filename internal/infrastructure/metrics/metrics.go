package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pawpath"

// Metrics holds every collector the service exports. All methods are safe
// on a nil receiver so components can run without instrumentation.
type Metrics struct {
	cacheLookups      *prometheus.CounterVec
	cacheWrites       *prometheus.CounterVec
	cacheInvalidates  *prometheus.CounterVec
	degradedServes    *prometheus.CounterVec
	storageErrors     *prometheus.CounterVec
	leaseConflicts    *prometheus.CounterVec
	regenerations     *prometheus.CounterVec
	listQueryDuration *prometheus.HistogramVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "content_cache_lookups_total",
				Help:      "Content cache lookups by outcome",
			},
			[]string{"content_type", "status", "reason"},
		),
		cacheWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "content_cache_writes_total",
				Help:      "Content cache writes, split into inserts and overwrites",
			},
			[]string{"content_type", "result"},
		),
		cacheInvalidates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "content_cache_invalidations_total",
				Help:      "Content cache invalidations by whether a row existed",
			},
			[]string{"content_type", "deleted"},
		),
		degradedServes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "content_cache_degraded_serves_total",
				Help:      "Last-known entries served because storage was unavailable",
			},
			[]string{"content_type"},
		),
		storageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "storage_errors_total",
				Help:      "Storage failures by operation",
			},
			[]string{"operation"},
		),
		leaseConflicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "regeneration_lease_conflicts_total",
				Help:      "Regeneration attempts refused because another holder owns the lease",
			},
			[]string{"content_type"},
		),
		regenerations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "regenerations_total",
				Help:      "Regeneration runs by outcome",
			},
			[]string{"content_type", "outcome"},
		),
		listQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "business_list_query_duration_seconds",
				Help:      "Duration of admin business list queries",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// Default returns the collectors registered on the global registry that
// /metrics serves.
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

func (m *Metrics) CacheLookup(contentType, status, reason string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(contentType, status, reason).Inc()
}

func (m *Metrics) CacheWrite(contentType string, created bool) {
	if m == nil {
		return
	}
	result := "updated"
	if created {
		result = "created"
	}
	m.cacheWrites.WithLabelValues(contentType, result).Inc()
}

func (m *Metrics) CacheInvalidate(contentType string, deleted bool) {
	if m == nil {
		return
	}
	m.cacheInvalidates.WithLabelValues(contentType, strconv.FormatBool(deleted)).Inc()
}

func (m *Metrics) DegradedServe(contentType string) {
	if m == nil {
		return
	}
	m.degradedServes.WithLabelValues(contentType).Inc()
}

func (m *Metrics) StorageError(operation string) {
	if m == nil {
		return
	}
	m.storageErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) LeaseConflict(contentType string) {
	if m == nil {
		return
	}
	m.leaseConflicts.WithLabelValues(contentType).Inc()
}

func (m *Metrics) Regeneration(contentType, outcome string) {
	if m == nil {
		return
	}
	m.regenerations.WithLabelValues(contentType, outcome).Inc()
}

func (m *Metrics) ObserveListQuery(d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.listQueryDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) ObserveHTTPRequest(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
