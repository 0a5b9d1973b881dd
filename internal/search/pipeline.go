package search

import (
	"context"
	"errors"
	"time"

	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
)

// Pipeline debounces and sequences searches per key (one key per session).
type Pipeline struct {
	debouncer *Debouncer
	sequencer *Sequencer
	metrics   metrics.Sink
}

// NewPipeline creates a Pipeline with the given debounce window.
func NewPipeline(window time.Duration, sink metrics.Sink) *Pipeline {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Pipeline{
		debouncer: NewDebouncer(window),
		sequencer: NewSequencer(),
		metrics:   sink,
	}
}

// Submit runs fn for key once the request survives debouncing. Immediate
// requests skip the delay and supersede any pending one. fn's result must only
// be used when Submit returns nil: ErrSuperseded means fn never ran, ErrStale
// means a later dispatch for key was issued while fn ran.
func (p *Pipeline) Submit(ctx context.Context, key string, immediate bool, fn func(context.Context) error) error {
	if immediate {
		p.debouncer.Cancel(key)
	} else if err := p.debouncer.Wait(ctx, key); err != nil {
		if errors.Is(err, ErrSuperseded) {
			p.metrics.SearchDispatch(metrics.SearchSuperseded)
		}
		return err
	}

	seq := p.sequencer.Next(key)
	p.metrics.SearchDispatch(metrics.SearchDispatched)

	if err := fn(ctx); err != nil {
		if !p.sequencer.IsLatest(key, seq) {
			p.metrics.SearchDispatch(metrics.SearchStale)
			return ErrStale
		}
		return err
	}
	if !p.sequencer.IsLatest(key, seq) {
		p.metrics.SearchDispatch(metrics.SearchStale)
		return ErrStale
	}
	return nil
}

// Keys lists the keys the pipeline holds state for.
func (p *Pipeline) Keys() []string { return p.sequencer.Keys() }

// Forget cancels pending work for key and invalidates in-flight dispatches.
func (p *Pipeline) Forget(key string) {
	p.debouncer.Cancel(key)
	p.sequencer.Forget(key)
}
