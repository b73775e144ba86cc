package cmd

import (
	"log/slog"
	"time"

	httpadapter "harvest/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// NewRateLimiter builds the limiter for mutating routes. Without REDIS_ADDR
// it lets every request through. The returned func closes the Redis client.
func NewRateLimiter(cfg Config, logger *slog.Logger) (echo.MiddlewareFunc, func() error) {
	limiterCfg := httpadapter.RateLimiterConfig{
		Limit:  cfg.RateLimitPerMinute,
		Window: time.Minute,
	}
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, rate limiting disabled")
		return httpadapter.NewRateLimiter(limiterCfg), func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	limiterCfg.Store = client
	return httpadapter.NewRateLimiter(limiterCfg), client.Close
}
