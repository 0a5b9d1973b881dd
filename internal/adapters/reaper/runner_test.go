package reaper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) Sweep(context.Context) (int, error) {
	s.calls.Add(1)
	return 1, s.err
}

func TestNewRunner_Validation(t *testing.T) {
	_, err := NewRunner(RunnerOptions{Interval: time.Second})
	require.Error(t, err)

	_, err = NewRunner(RunnerOptions{Sweeper: &countingSweeper{}})
	require.Error(t, err)
}

func TestRunner_SweepsUntilCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, sweepErr := range []error{nil, errors.New("store unavailable")} {
		sw := &countingSweeper{err: sweepErr}
		r, err := NewRunner(RunnerOptions{Sweeper: sw, Interval: 5 * time.Millisecond})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- r.Run(ctx) }()

		require.Eventually(t, func() bool { return sw.calls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		assert.NoError(t, <-done)
	}
}

func TestRunner_DeadlineIsReturned(t *testing.T) {
	r, err := NewRunner(RunnerOptions{Sweeper: &countingSweeper{}, Interval: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Run(ctx), context.DeadlineExceeded)
}
