package config

import (
	"strings"
	"time"
)

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	// Enabled selects the Redis session store and catalog cache.
	// When false, sessions live in process memory and the catalog is not cached.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:""`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}

// Sanitize trims addresses and drops empty sentinel entries.
func (c *RedisConfig) Sanitize() {
	c.URI = strings.TrimSpace(c.URI)
	nodes := make([]string, 0, len(c.SentinelNodes))
	for _, n := range c.SentinelNodes {
		if n = strings.TrimSpace(n); n != "" {
			nodes = append(nodes, n)
		}
	}
	c.SentinelNodes = nodes
	if c.UseSentinel && len(c.SentinelNodes) == 0 {
		c.UseSentinel = false
	}
}

// CacheConfig contains cache configuration (Redis-based).
type CacheConfig struct {
	// CatalogTTL is how long the shoe model list is cached.
	CatalogTTL time.Duration `env:"CACHE_CATALOG_TTL" envDefault:"1m"`
}

// Sanitize clamps the catalog TTL.
func (c *CacheConfig) Sanitize() {
	if c.CatalogTTL < 0 {
		c.CatalogTTL = 0
	}
}
