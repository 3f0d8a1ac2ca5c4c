package middleware

import (
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimiter is a fixed-window limiter keyed per IP, method and route.
// A nil client disables it. Redis failures let the request through.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration, logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "rate-limiter").Logger()

	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + endpoint
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, skipping rate limit")
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := client.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to set rate limit window")
			}
		}

		resetAtUnix, err := client.Get(ctx, resetKey).Int64()
		if err != nil {
			resetAtUnix = time.Now().Add(window).Unix()
		}
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := max(maxRequests-int(count), 0)
		resetInSeconds := max(int(time.Until(resetAt).Seconds()), 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set(models.ContextKeyRateLimiter, rate)

		if int(count) > maxRequests {
			log.Warn().Str("key", key).Int64("count", count).Msg("rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message:   "Too many requests",
				Error:     true,
				Rate:      rate,
				RequestID: c.GetString(models.ContextKeyRequestID),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
