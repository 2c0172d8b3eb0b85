package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/shared/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthHandler struct {
	db     Pinger
	redis  Pinger
	logger logger.Interface
}

// NewHealthHandler takes a nil redis pinger when redis is disabled.
func NewHealthHandler(db, redis Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, logger: logger}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// HealthCheck handles GET /health
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "up", Redis: "disabled"}
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Errorw("health check: database unreachable", "error", err)
		resp.Status, resp.Database = "degraded", "down"
		code = http.StatusServiceUnavailable
	}
	if h.redis != nil {
		resp.Redis = "up"
		if err := h.redis.Ping(ctx); err != nil {
			h.logger.Warnw("health check: redis unreachable", "error", err)
			resp.Status, resp.Redis = "degraded", "down"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, resp)
}
