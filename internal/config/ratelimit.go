package config

import (
	"time"
)

// RateLimitConfig defines settings for the fixed-window rate limiter.
// Limit requests are allowed per client and route within each Window.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig.  Disabled by default; like the cache it requires a
// Redis client to take effect.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "false") == "true",
		Limit:   atoi(getenv("RATE_LIMIT_LIMIT", "60")),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
