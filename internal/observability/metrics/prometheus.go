package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	obserrors "github.com/shoetrack/shoetrack-ui/internal/observability/errors"
)

const namespace = "shoetrack"

// Prometheus is a Sink backed by its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	httpDuration     *prometheus.HistogramVec
	upstreamDuration *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec
	searches         *prometheus.CounterVec
	chartHandles     prometheus.Gauge
	loginThrottled   prometheus.Counter
}

// NewPrometheus registers the service collectors, plus the Go runtime and
// process collectors, on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of served HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of record server calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "result"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "transport_errors_total",
			Help:      "Record server calls that failed before a response.",
		}, []string{"endpoint", "error_class"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Live search requests by outcome.",
		}, []string{"outcome"}),
		chartHandles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "live_handles",
			Help:      "Chart handles currently held.",
		}),
		loginThrottled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_throttled_total",
			Help:      "Login attempts rejected by the rate limiter.",
		}),
	}
	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.httpDuration,
		p.upstreamDuration,
		p.upstreamErrors,
		p.searches,
		p.chartHandles,
		p.loginThrottled,
	)
	return p
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler serves the registry in the exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Prometheus) HTTPRequest(route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	p.httpDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

func (p *Prometheus) UpstreamRequest(endpoint, result string, d time.Duration, err error) {
	p.upstreamDuration.WithLabelValues(endpoint, result).Observe(d.Seconds())
	if err != nil {
		p.upstreamErrors.WithLabelValues(endpoint, obserrors.Classify(err)).Inc()
	}
}

func (p *Prometheus) SearchDispatch(outcome string) {
	p.searches.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) ChartHandles(n int) { p.chartHandles.Set(float64(n)) }

func (p *Prometheus) LoginThrottled() { p.loginThrottled.Inc() }

var _ Sink = (*Prometheus)(nil)
