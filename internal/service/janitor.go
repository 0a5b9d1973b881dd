package service

import (
	"context"
	"errors"
	"fmt"
)

// SessionStateHolder keeps state keyed by session id.
type SessionStateHolder interface {
	SessionIDs() []string
}

// ExpiredSessionSweeper purges expired sessions from a store that keeps them
// until asked.
type ExpiredSessionSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// SessionJanitorOptions groups dependencies for SessionJanitor.
type SessionJanitorOptions struct {
	Auth *AuthService
	// Store is swept first when set. Stores with their own TTLs leave it nil.
	Store   ExpiredSessionSweeper
	Holders []SessionStateHolder
}

// SessionJanitor releases chart and search state for sessions that ended
// without a logout: expired, evicted by the store, or swept.
type SessionJanitor struct {
	auth    *AuthService
	store   ExpiredSessionSweeper
	holders []SessionStateHolder
}

// NewSessionJanitor constructs a SessionJanitor.
func NewSessionJanitor(opts SessionJanitorOptions) (*SessionJanitor, error) {
	if opts.Auth == nil {
		return nil, errors.New("auth service is required")
	}
	return &SessionJanitor{auth: opts.Auth, store: opts.Store, holders: opts.Holders}, nil
}

// Sweep purges expired sessions from the store, then releases state still
// held for any session that no longer exists. It returns the number of
// sessions whose state was released.
func (j *SessionJanitor) Sweep(ctx context.Context) (int, error) {
	if j.store != nil {
		if _, err := j.store.Sweep(ctx); err != nil {
			return 0, fmt.Errorf("sweep sessions: %w", err)
		}
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, h := range j.holders {
		for _, id := range h.SessionIDs() {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return j.auth.ReleaseEnded(ctx, ids)
}
