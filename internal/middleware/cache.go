package middleware

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/festivalapp/festival-api/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cache entry.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder buffers the response body while forwarding it to the
// client, so a successful response can be stored after the handler
// ran.  Writes beyond limit flow through uncaptured and mark the
// response as too large to cache.
type bodyRecorder struct {
	http.ResponseWriter
	status   int
	body     []byte
	limit    int
	overflow bool
}

func (br *bodyRecorder) WriteHeader(code int) {
	br.status = code
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	if !br.overflow {
		if len(br.body)+len(b) <= br.limit {
			br.body = append(br.body, b...)
		} else {
			br.overflow = true
			br.body = nil
		}
	}
	return br.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the route and query string.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache returns middleware that caches successful GET
// responses in Redis for the configured TTL.  With caching disabled
// or no Redis client it is a pass-through, so the API never depends
// on Redis being up.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var entry cachedResponse
				if err := json.Unmarshal(raw, &entry); err == nil {
					if entry.ContentType != "" {
						c.Response().Header().Set(echo.HeaderContentType, entry.ContentType)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(entry.Status)
					_, err = c.Response().Write(entry.Body)
					return err
				}
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if rec.status == http.StatusOK && !rec.overflow {
				entry := cachedResponse{
					Status:      rec.status,
					ContentType: strings.TrimSpace(c.Response().Header().Get(echo.HeaderContentType)),
					Body:        rec.body,
				}
				if raw, err := json.Marshal(entry); err == nil {
					// handler already replied; use a fresh context for the write-back
					_ = rdb.SetEx(context.Background(), key, raw, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}
