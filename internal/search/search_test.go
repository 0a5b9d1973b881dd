package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncer_BurstRunsOnce(t *testing.T) {
	const window = 60 * time.Millisecond
	d := NewDebouncer(window)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		fired    atomic.Int32
		lastWait time.Time
		firedAt  time.Time
		mu       sync.Mutex
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		mu.Lock()
		lastWait = time.Now()
		mu.Unlock()
		go func() {
			defer wg.Done()
			if err := d.Wait(ctx, "session-1"); err == nil {
				fired.Add(1)
				mu.Lock()
				firedAt = time.Now()
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrSuperseded)
			}
		}()
		time.Sleep(5 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load())
	assert.GreaterOrEqual(t, firedAt.Sub(lastWait), window)
	assert.Zero(t, d.Pending())
}

func TestDebouncer_SpacedRequestsAllRun(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Wait(context.Background(), "k"))
	}
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	errs := make(chan error, 2)
	for _, key := range []string{"a", "b"} {
		go func(key string) { errs <- d.Wait(context.Background(), key) }(key)
	}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
}

func TestDebouncer_ContextAndCancel(t *testing.T) {
	d := NewDebouncer(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Wait(ctx, "k") }()
	require.Eventually(t, func() bool { return d.Pending() == 1 }, time.Second, time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	assert.Zero(t, d.Pending())

	go func() { done <- d.Wait(context.Background(), "k") }()
	require.Eventually(t, func() bool { return d.Pending() == 1 }, time.Second, time.Millisecond)
	d.Cancel("k")
	require.ErrorIs(t, <-done, ErrSuperseded)
}

func TestDebouncer_ZeroWindow(t *testing.T) {
	d := NewDebouncer(0)
	require.NoError(t, d.Wait(context.Background(), "k"))
	assert.Zero(t, d.Pending())
}

func TestDebouncer_TimerFiringAfterReplacementIsSuperseded(t *testing.T) {
	d := NewDebouncer(time.Minute)
	old := &waiter{superseded: make(chan struct{})}
	d.pending["sess"] = old

	// A newer request takes the slot while old's timer is firing.
	d.pending["sess"] = &waiter{superseded: make(chan struct{})}
	require.ErrorIs(t, d.settle("sess", old), ErrSuperseded)
	assert.Equal(t, 1, d.Pending())

	d.Cancel("sess")
	require.ErrorIs(t, d.settle("sess", old), ErrSuperseded)

	current := &waiter{superseded: make(chan struct{})}
	d.pending["sess"] = current
	require.NoError(t, d.settle("sess", current))
	assert.Zero(t, d.Pending())
}

func TestSequencer(t *testing.T) {
	s := NewSequencer()
	first := s.Next("a")
	second := s.Next("a")
	other := s.Next("b")

	assert.False(t, s.IsLatest("a", first))
	assert.True(t, s.IsLatest("a", second))
	assert.True(t, s.IsLatest("b", other))

	s.Forget("a")
	assert.False(t, s.IsLatest("a", second))
	assert.Greater(t, s.Next("a"), other)
}

func TestPipeline_OverlappingSearchesLatestIssuedWins(t *testing.T) {
	p := NewPipeline(time.Millisecond, nil)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	var abc, abcd string

	slow := make(chan error, 1)
	go func() {
		slow <- p.Submit(ctx, "session-1", false, func(context.Context) error {
			close(started)
			<-release
			abc = "abc results"
			return nil
		})
	}()
	<-started

	err := p.Submit(ctx, "session-1", false, func(context.Context) error {
		abcd = "abcd results"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abcd results", abcd)

	close(release)
	require.ErrorIs(t, <-slow, ErrStale)
	assert.Equal(t, "abc results", abc)
}

func TestPipeline_ImmediateSupersedesPending(t *testing.T) {
	p := NewPipeline(time.Hour, nil)
	ctx := context.Background()

	pending := make(chan error, 1)
	ran := atomic.Bool{}
	go func() {
		pending <- p.Submit(ctx, "k", false, func(context.Context) error {
			ran.Store(true)
			return nil
		})
	}()
	require.Eventually(t, func() bool { return p.debouncer.Pending() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, p.Submit(ctx, "k", true, func(context.Context) error { return nil }))
	require.ErrorIs(t, <-pending, ErrSuperseded)
	assert.False(t, ran.Load())
}

func TestPipeline_ErrorsAndForget(t *testing.T) {
	p := NewPipeline(0, nil)
	ctx := context.Background()
	boom := errors.New("upstream down")

	err := p.Submit(ctx, "k", true, func(context.Context) error { return boom })
	require.ErrorIs(t, err, boom)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- p.Submit(ctx, "k", true, func(context.Context) error {
			close(started)
			<-release
			return boom
		})
	}()
	<-started
	p.Forget("k")
	close(release)
	require.ErrorIs(t, <-done, ErrStale)
}
