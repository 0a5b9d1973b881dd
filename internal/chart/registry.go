package chart

import (
	"encoding/base64"
	"html/template"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
)

// Handle is a live chart owned by one session.
type Handle struct {
	ID        string
	Filter    model.ChartFilter
	Image     Image
	CreatedAt time.Time

	released atomic.Bool
}

// SVG returns the chart markup for inline embedding. The markup is
// produced by the renderer, never from user input.
func (h *Handle) SVG() template.HTML {
	return template.HTML(h.Image.SVG) //nolint:gosec // renderer output
}

// PNGDataURI returns the PNG as a data: URI for the download link.
func (h *Handle) PNGDataURI() template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(h.Image.PNG)) //nolint:gosec // base64 payload
}

// Released reports whether the handle has been replaced or released.
func (h *Handle) Released() bool { return h.released.Load() }

// Registry holds at most one handle per key.
type Registry struct {
	mu      sync.Mutex
	handles map[string]*Handle
	locks   map[string]*keyLock
	now     func() time.Time
	metrics metrics.Sink
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewRegistry creates an empty registry.
func NewRegistry(sink metrics.Sink) *Registry {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Registry{
		handles: make(map[string]*Handle),
		locks:   make(map[string]*keyLock),
		now:     time.Now,
		metrics: sink,
	}
}

// Replace releases the handle held for key, then builds a new one. The old
// handle is released even when build fails; on failure key holds nothing.
// Replace calls for the same key run one at a time, in arrival order of the lock.
func (r *Registry) Replace(key string, filter model.ChartFilter, build func() (Image, error)) (*Handle, error) {
	unlock := r.lockKey(key)
	defer unlock()

	r.Release(key)

	img, err := build()
	if err != nil {
		return nil, err
	}

	h := &Handle{ID: uuid.NewString(), Filter: filter, Image: img, CreatedAt: r.now()}
	r.mu.Lock()
	r.handles[key] = h
	live := len(r.handles)
	r.mu.Unlock()
	r.metrics.ChartHandles(live)
	return h, nil
}

// Get returns the live handle for key.
func (r *Registry) Get(key string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[key]
	return h, ok
}

// Release drops the handle for key, reporting whether one existed.
func (r *Registry) Release(key string) bool {
	r.mu.Lock()
	h, ok := r.handles[key]
	if ok {
		h.released.Store(true)
		delete(r.handles, key)
	}
	live := len(r.handles)
	r.mu.Unlock()
	r.metrics.ChartHandles(live)
	return ok
}

// Keys lists the keys holding a handle.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.handles))
	for k := range r.handles {
		keys = append(keys, k)
	}
	return keys
}

// Live returns the number of handles held.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

func (r *Registry) lockKey(key string) func() {
	r.mu.Lock()
	kl, ok := r.locks[key]
	if !ok {
		kl = &keyLock{}
		r.locks[key] = kl
	}
	kl.refs++
	r.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		r.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(r.locks, key)
		}
		r.mu.Unlock()
	}
}
