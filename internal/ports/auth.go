package ports

// Package ports defines interfaces (hexagonal ports) between the services and
// their adapters. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
)

// ErrSessionNotFound is returned by session stores for unknown or expired ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionAdmin exposes the operator view of the session store.
type SessionAdmin interface {
	SessionStore
	List(ctx context.Context) ([]domainauth.Session, error)
	DeleteAll(ctx context.Context) (int, error)
}

// CacheRepository is a byte-oriented cache with per-key TTLs.
type CacheRepository interface {
	// Set stores a value with the given TTL; zero TTL never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete reports whether the key existed.
	Delete(ctx context.Context, key string) (bool, error)
	Health(ctx context.Context) error
}
