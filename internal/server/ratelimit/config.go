package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting for a specific endpoint
type EndpointConfig struct {
	Path   string        // path prefix
	Limit  int           // requests per window; <=0 means unlimited
	Window time.Duration
	Burst  int // burst capacity; defaults to Limit
}

// Config holds rate limiting configuration
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// DefaultConfig returns the default limits for the scoring API.
// Comparison fans out up to ten evaluations per call, so it gets the
// strictest budget.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/compare", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/score", Limit: 120, Window: time.Minute, Burst: 20},
			{Path: "/explain", Limit: 120, Window: time.Minute, Burst: 20},
			{Path: "/project", Limit: 120, Window: time.Minute, Burst: 20},
		},
	}
}

// LoadConfig loads rate limiting configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", true)
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

// match finds the endpoint configuration for a path, falling back to the
// default limit
func (c *Config) match(path string) EndpointConfig {
	for _, e := range c.Endpoints {
		if path == e.Path || strings.HasPrefix(path, e.Path+"/") {
			return e
		}
	}
	return EndpointConfig{Path: path, Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
