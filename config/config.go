package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - upstream.go: record server (API) client configuration
//   - session.go: browser session and login throttling configuration
//   - redis.go: Redis and catalog cache configuration
//   - search.go: shoe search pipeline configuration
//   - observability.go: logging and metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, verbose errors).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	HTTP     HTTPConfig
	Upstream UpstreamConfig  `envPrefix:"UPSTREAM_"`
	Session  SessionConfig   `envPrefix:"SESSION_"`
	Login    LoginRateConfig `envPrefix:"LOGIN_RATE_"`

	Redis RedisConfig `envPrefix:"REDIS_"`
	Cache CacheConfig

	Search SearchConfig `envPrefix:"SEARCH_"`

	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Upstream.Sanitize()
	c.Session.Sanitize()
	c.Login.Sanitize()
	c.Redis.Sanitize()
	c.Cache.Sanitize()
	c.Search.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
