package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimitStore is the subset of *redis.Client used by the limiter.
type RateLimitStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

type RateLimiterConfig struct {
	Store     RateLimitStore
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

// NewRateLimiter counts requests per actor, or per client IP for anonymous
// callers, in fixed windows. When the store is unreachable requests are let
// through.
func NewRateLimiter(cfg RateLimiterConfig) echo.MiddlewareFunc {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "harvest:rl:"
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Store == nil || cfg.Limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cfg.KeyPrefix + clientKey(c)

			count, err := cfg.Store.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}

			if count == 1 {
				cfg.Store.Expire(ctx, key, cfg.Window)
			}

			reset := 0
			if ttl, ttlErr := cfg.Store.TTL(ctx, key).Result(); ttlErr == nil && ttl > 0 {
				reset = int(ttl.Seconds())
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			header.Set("X-RateLimit-Reset", strconv.Itoa(reset))

			if count > int64(cfg.Limit) {
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("Retry-After", strconv.Itoa(reset))
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{
					Code:    http.StatusTooManyRequests,
					Message: fmt.Sprintf("rate limit of %d requests per %s exceeded", cfg.Limit, cfg.Window),
				})
			}

			header.Set("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-int(count)))
			return next(c)
		}
	}
}

func clientKey(c echo.Context) string {
	if actor, ok := ActorFrom(c); ok {
		return "actor:" + actor.ID.String()
	}
	return "ip:" + c.RealIP()
}
