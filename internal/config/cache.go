package config

import (
	"strconv"
	"time"
)

// CacheConfig defines settings for the GET-response cache middleware.
// When Enabled is false or no Redis client is configured, caching is a
// no-op.  TTL bounds how stale a cached schedule response may be;
// MaxBodyBytes skips caching of oversized responses.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Caching is off unless CACHE_ENABLED is set: correctness of the API
// never depends on it.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "false") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

// Helper functions shared with ratelimit.go.
func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
