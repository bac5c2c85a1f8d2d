package configs

import (
	"strconv"
	"time"
)

// FallbackPolicy controls what a dashboard does when an upstream fetch fails.
type FallbackPolicy string

const (
	// FallbackEmpty leaves the failed collection empty and lets the rest of
	// the dashboard populate.
	FallbackEmpty FallbackPolicy = "empty"
	// FallbackDemo swaps the whole dashboard to the built-in demo dataset and
	// raises a demo-mode notice.
	FallbackDemo FallbackPolicy = "demo"
)

// Config is the gateway runtime configuration, resolved from the environment.
type Config struct {
	ListenAddr      string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	Fallback        FallbackPolicy
	RedisURL        string
}

const defaultUpstreamBase = "http://localhost:8000/api"

// Load resolves the gateway configuration from environment variables.
func Load() Config {
	cfg := Config{
		ListenAddr:      LoadEnvOr("LISTEN_ADDR", "localhost:8080"),
		UpstreamBaseURL: LoadEnvOr("ARTWALA_API_BASE", defaultUpstreamBase),
		UpstreamTimeout: 10 * time.Second,
		Fallback:        FallbackEmpty,
		RedisURL:        LoadEnvFor("REDIS_URL"),
	}

	if secs, err := strconv.Atoi(LoadEnvFor("UPSTREAM_TIMEOUT_SECS")); err == nil && secs > 0 {
		cfg.UpstreamTimeout = time.Duration(secs) * time.Second
	}

	if FallbackPolicy(LoadEnvFor("FETCH_FALLBACK")) == FallbackDemo {
		cfg.Fallback = FallbackDemo
	}

	return cfg
}
