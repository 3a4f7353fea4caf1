package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/festivalapp/festival-api/internal/config"
)

// NewRateLimit returns middleware enforcing a fixed-window request
// limit per client IP and route, counted in Redis so multiple
// instances share one budget.  Like the response cache it degrades to
// a pass-through when disabled, when no Redis client is configured,
// or when Redis errors mid-flight: availability of the API wins over
// strict limiting.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	window := cfg.Window
	if window < time.Second {
		window = time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			bucket := time.Now().Unix() / int64(window/time.Second)
			key := cfg.Prefix + ":" + ip + ":" + c.Request().Method + ":" + c.Path() + ":" + strconv.FormatInt(bucket, 10)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				retry := int(window/time.Second) - int(time.Now().Unix()%int64(window/time.Second))
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
