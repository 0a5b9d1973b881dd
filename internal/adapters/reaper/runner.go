// Package reaper periodically purges expired sessions and the state they
// left behind.
package reaper

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sweeper removes expired entries and reports how many went.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Runner drives a Sweeper on a fixed interval.
type Runner struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Sweeper  Sweeper
	Interval time.Duration
	Logger   *slog.Logger
}

// NewRunner validates opts and builds a Runner.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Sweeper == nil {
		return nil, errors.New("sweeper is required")
	}
	if opts.Interval <= 0 {
		return nil, errors.New("interval must be positive")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		sweeper:  opts.Sweeper,
		interval: opts.Interval,
		logger:   opts.Logger.With("component", "session_reaper"),
	}, nil
}

// Run sweeps until ctx is cancelled. Sweep errors are logged, not returned.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting session reaper", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "session reaper stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Runner) sweep(ctx context.Context) {
	n, err := r.sweeper.Sweep(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "session sweep failed", "error", err)
		return
	}
	if n > 0 {
		r.logger.InfoContext(ctx, "ended sessions released", "count", n)
	}
}
