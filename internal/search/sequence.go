package search

import (
	"errors"
	"sync"
)

// ErrStale is returned for a response overtaken by a later dispatch.
var ErrStale = errors.New("search response is stale")

// Sequencer numbers dispatches so only the latest one per key is applied.
// Numbers come from one counter and are never reused, even after Forget.
type Sequencer struct {
	mu     sync.Mutex
	next   uint64
	latest map[string]uint64
}

// NewSequencer creates an empty Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Next issues a number for key and makes it the latest.
func (s *Sequencer) Next(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.latest[key] = s.next
	return s.next
}

// IsLatest reports whether seq is the most recent number issued for key.
func (s *Sequencer) IsLatest(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == seq
}

// Keys lists the keys with an issued number.
func (s *Sequencer) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.latest))
	for k := range s.latest {
		keys = append(keys, k)
	}
	return keys
}

// Forget drops key. In-flight dispatches for it become stale.
func (s *Sequencer) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.latest, key)
}
