package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestLoginLimiter_AllowsBurstThenRejects(t *testing.T) {
	l := NewLoginLimiter(LoginLimiterConfig{PerMinute: 1, Burst: 2})
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "addresses are limited independently")

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("10.0.0.1"), "token refills after a minute")
}

func TestLoginLimiter_SweepDropsIdleVisitors(t *testing.T) {
	l := NewLoginLimiter(LoginLimiterConfig{})
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(5 * time.Minute)
	l.Allow("10.0.0.2")
	assert.Equal(t, 0, l.Sweep())

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, l.Sweep())
	l.mu.Lock()
	_, kept := l.visitors["10.0.0.2"]
	l.mu.Unlock()
	assert.True(t, kept)
}

func TestLoginLimiter_RunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	l := NewLoginLimiter(LoginLimiterConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()
	<-done
}

func TestLoginLimiter_MiddlewareOnlyThrottlesPost(t *testing.T) {
	sink := &recordingSink{}
	l := NewLoginLimiter(LoginLimiterConfig{PerMinute: 1, Burst: 1, Metrics: sink})
	rejected := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	h := l.Middleware(rejected)(okHandler())

	post := func() int {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.RemoteAddr = "192.0.2.7:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
	assert.Equal(t, 1, sink.throttled)

	get := httptest.NewRequest(http.MethodGet, "/login", nil)
	get.RemoteAddr = "192.0.2.7:5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, get)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientAddr(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientAddr(r))
}
