package httpx

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
)

const defaultVisitorIdle = 10 * time.Minute

// LoginLimiterConfig configures per-address throttling of login attempts.
type LoginLimiterConfig struct {
	PerMinute float64
	Burst     int
	Metrics   metrics.Sink
}

// LoginLimiter throttles POST /login per client address.
type LoginLimiter struct {
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
	metrics metrics.Sink

	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewLoginLimiter builds a limiter. Zero values fall back to 10/min, burst 5.
func NewLoginLimiter(cfg LoginLimiterConfig) *LoginLimiter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 10
	}
	if cfg.Burst < 1 {
		cfg.Burst = 5
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Noop{}
	}
	return &LoginLimiter{
		limit:    rate.Limit(cfg.PerMinute / 60),
		burst:    cfg.Burst,
		idle:     defaultVisitorIdle,
		now:      time.Now,
		metrics:  cfg.Metrics,
		visitors: make(map[string]*visitor),
	}
}

// Allow reports whether addr may attempt a login now.
func (l *LoginLimiter) Allow(addr string) bool {
	now := l.now()
	l.mu.Lock()
	v, ok := l.visitors[addr]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[addr] = v
	}
	v.seen = now
	lim := v.limiter
	l.mu.Unlock()
	return lim.AllowN(now, 1)
}

// Sweep drops visitors idle for longer than the idle window.
func (l *LoginLimiter) Sweep() int {
	cutoff := l.now().Add(-l.idle)
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for addr, v := range l.visitors {
		if v.seen.Before(cutoff) {
			delete(l.visitors, addr)
			removed++
		}
	}
	return removed
}

// Run sweeps idle visitors until ctx is done.
func (l *LoginLimiter) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Sweep()
		}
	}
}

// Middleware rejects throttled POST requests with 429 via the rejected handler.
func (l *LoginLimiter) Middleware(rejected http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && !l.Allow(clientAddr(r)) {
				l.metrics.LoginThrottled()
				rejected.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientAddr returns the caller's address, preferring the first
// X-Forwarded-For hop set by a fronting proxy.
func clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
