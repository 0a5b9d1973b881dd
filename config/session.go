package config

import (
	"strings"
	"time"
)

// DefaultSessionCookieName is the browser cookie that carries the session id.
const DefaultSessionCookieName = "shoetrack_session"

// SessionConfig controls browser sessions.
type SessionConfig struct {
	// TTL is how long a session stays valid after login.
	TTL time.Duration `env:"TTL" envDefault:"8h"`

	// CookieName names the session cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"shoetrack_session"`

	// SweepInterval is how often expired sessions are purged from the
	// in-memory store. Redis expires keys on its own.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
}

// Sanitize enforces a positive TTL and a cookie name.
func (c *SessionConfig) Sanitize() {
	if c.TTL <= 0 {
		c.TTL = 8 * time.Hour
	}
	c.CookieName = strings.TrimSpace(c.CookieName)
	if c.CookieName == "" {
		c.CookieName = DefaultSessionCookieName
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = 5 * time.Minute
	}
}

// LoginRateConfig throttles login attempts per client address.
type LoginRateConfig struct {
	// PerMinute is the sustained number of attempts allowed per minute.
	PerMinute float64 `env:"PER_MINUTE" envDefault:"10"`

	// Burst is the number of attempts allowed back to back.
	Burst int `env:"BURST" envDefault:"5"`
}

// Sanitize keeps the limiter usable.
func (c *LoginRateConfig) Sanitize() {
	if c.PerMinute <= 0 {
		c.PerMinute = 10
	}
	if c.Burst < 1 {
		c.Burst = 1
	}
}
