// middleware/rate_limiter.go
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiterConfig defines the window for a single endpoint group.
type RateLimiterConfig struct {
	RequestsPerWindow int
	WindowDuration    time.Duration
	KeyPrefix         string
}

// Sliding-window counter over a redis sorted set. Atomic via Lua so
// concurrent requests cannot race the count.
const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window_start = tonumber(ARGV[2])
local max_requests = tonumber(ARGV[3])
local window_seconds = tonumber(ARGV[4])

redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

local current = redis.call('ZCARD', key)
if current >= max_requests then
	return {0, 0}
end

redis.call('ZADD', key, now, now .. '-' .. math.random(1000000))
redis.call('EXPIRE', key, window_seconds + 60)

local remaining = max_requests - current - 1
if remaining < 0 then remaining = 0 end

return {1, remaining}
`

// EndpointRateLimit applies a per-client-IP sliding window to the wrapped
// routes. A redis failure fails open; rate limiting is protection, not a
// dependency.
func EndpointRateLimit(rdb *redis.Client, config RateLimiterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", config.KeyPrefix, c.ClientIP())
		now := time.Now().Unix()
		windowStart := now - int64(config.WindowDuration.Seconds())

		result, err := rdb.Eval(c.Request.Context(), slidingWindowScript, []string{key},
			now, windowStart, config.RequestsPerWindow, int(config.WindowDuration.Seconds())).Result()
		if err != nil {
			c.Next()
			return
		}

		results, ok := result.([]interface{})
		if !ok || len(results) != 2 {
			c.Next()
			return
		}
		allowed := results[0].(int64) == 1
		remaining := results[1].(int64)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", config.RequestsPerWindow))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(config.WindowDuration).Unix()))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     fmt.Sprintf("Too many requests, please try again in %v", config.WindowDuration),
				"retry_after": int(config.WindowDuration.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
