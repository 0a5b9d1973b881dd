// Package metrics records service metrics. Components depend on Sink and
// never on the Prometheus types directly.
package metrics

import "time"

// Result labels.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Search dispatch outcomes.
const (
	SearchDispatched = "dispatched"
	SearchSuperseded = "superseded"
	SearchStale      = "stale"
)

// Sink receives metric events.
type Sink interface {
	// HTTPRequest records one served request. route is the mux pattern.
	HTTPRequest(route string, status int, d time.Duration)
	// UpstreamRequest records one record server call. err is set only for
	// transport failures.
	UpstreamRequest(endpoint, result string, d time.Duration, err error)
	SearchDispatch(outcome string)
	ChartHandles(n int)
	LoginThrottled()
}

// Noop discards everything.
type Noop struct{}

func (Noop) HTTPRequest(string, int, time.Duration)               {}
func (Noop) UpstreamRequest(string, string, time.Duration, error) {}
func (Noop) SearchDispatch(string)                                {}
func (Noop) ChartHandles(int)                                     {}
func (Noop) LoginThrottled()                                      {}

var _ Sink = Noop{}
