package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/shared/biztime"
	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(constants.ContextKeyRequestID)
		c.Status(http.StatusNoContent)
	})

	t.Run("propagates caller id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", map[string]string{constants.HeaderXRequestID: "req-123"})
		assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))
		assert.Equal(t, "req-123", seen)
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", nil)
		id := w.Header().Get(constants.HeaderXRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seen)
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://admin.pawpath.example"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantCode   int
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "https://admin.pawpath.example", wantOrigin: "https://admin.pawpath.example", wantCode: http.StatusOK},
		{name: "unknown origin", method: http.MethodGet, origin: "https://evil.example", wantOrigin: "", wantCode: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "https://admin.pawpath.example", wantOrigin: "https://admin.pawpath.example", wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, "/ping", map[string]string{"Origin": tt.origin})
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRequestLogger_RecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := gin.New()
	r.Use(RequestLogger(logger.NewNopLogger(), m))
	r.GET("/admin/businesses/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, http.MethodGet, "/admin/businesses/1", nil)
	serve(r, http.MethodGet, "/admin/businesses/2", nil)

	count, err := testutil.GatherAndCount(reg, "pawpath_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series per route pattern")
}

func TestStorageDeadline(t *testing.T) {
	r := gin.New()
	r.Use(StorageDeadline(50 * time.Millisecond))
	var deadline time.Time
	var ok bool
	r.GET("/ping", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusOK)
	})

	serve(r, http.MethodGet, "/ping", nil)

	assert.True(t, ok)
	assert.False(t, deadline.IsZero())
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := biztime.Fixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	r := gin.New()
	r.Use(NewRateLimiter(client, "writes", 1, time.Minute, now, logger.NewNopLogger()).Limit())
	r.PUT("/entry", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/entry", nil).Code)

	w := serve(r, http.MethodPut, "/entry", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// Counters are per client IP.
	other := serve(r, http.MethodPut, "/entry", map[string]string{"X-Forwarded-For": "198.51.100.7"})
	assert.Equal(t, http.StatusNoContent, other.Code)

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, 61*time.Second, mr.TTL(keys[0]))

	mr.Close()
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/entry", nil).Code,
		"redis errors let the request through")
}
