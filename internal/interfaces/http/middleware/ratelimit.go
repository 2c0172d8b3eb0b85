package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pawpath/pawpath/internal/shared/biztime"
	"github.com/pawpath/pawpath/internal/shared/logger"
	"github.com/pawpath/pawpath/internal/shared/utils"
)

// RateLimiter is a Redis fixed-window counter per client IP, shared by all
// instances pointing at the same Redis.
type RateLimiter struct {
	redisClient *redis.Client
	scope       string
	limit       int
	window      time.Duration
	now         biztime.Clock
	logger      logger.Interface
}

// NewRateLimiter limits requests under scope to limit per window.
func NewRateLimiter(redisClient *redis.Client, scope string, limit int, window time.Duration, now biztime.Clock, log logger.Interface) *RateLimiter {
	if now == nil {
		now = biztime.NowUTC
	}
	return &RateLimiter{
		redisClient: redisClient,
		scope:       scope,
		limit:       limit,
		window:      window,
		now:         now,
		logger:      log,
	}
}

// Limit returns the gin middleware.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	windowSeconds := int64(rl.window / time.Second)
	if windowSeconds < 1 {
		windowSeconds = 1
	}

	return func(c *gin.Context) {
		bucket := rl.now().Unix() / windowSeconds
		key := fmt.Sprintf("pawpath:ratelimit:%s:%s:%d", rl.scope, c.ClientIP(), bucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// Redis outages must not block writes.
			rl.logger.Warnw("rate limit check skipped", "scope", rl.scope, "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			retryAfter := (bucket+1)*windowSeconds - rl.now().Unix()
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
