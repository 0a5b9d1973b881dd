package config

import (
	"strings"
	"time"
)

// UpstreamConfig configures the client for the shoe record server.
type UpstreamConfig struct {
	// BaseURL is the scheme and host of the record server, e.g. "http://records:5000".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// APIPrefix is prepended to every endpoint path.
	APIPrefix string `env:"API_PREFIX" envDefault:"/api"`

	// Timeout bounds a single upstream request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// APIKey is sent as X-API-Key when set.
	APIKey string `env:"API_KEY"`
}

// Sanitize normalises the base URL and prefix.
func (c *UpstreamConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:5000"
	}

	prefix := strings.Trim(strings.TrimSpace(c.APIPrefix), "/")
	if prefix == "" {
		c.APIPrefix = ""
	} else {
		c.APIPrefix = "/" + prefix
	}

	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
}
