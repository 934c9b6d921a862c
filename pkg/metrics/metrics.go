package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "uuidgen"

// Batch triggers.
const (
	TriggerSelect   = "select"
	TriggerGenerate = "generate"
	TriggerAPI      = "api"
)

// Registry owns a prometheus.Registry and the uuidgen collectors on it.
type Registry struct {
	reg *prometheus.Registry

	IdentifiersTotal    *prometheus.CounterVec
	BatchesTotal        *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ActiveStreams       prometheus.Gauge
}

// New creates a Registry with all collectors registered.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		IdentifiersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identifiers_generated_total",
			Help:      "Identifiers generated, by version.",
		}, []string{"version"}),
		BatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_generated_total",
			Help:      "Identifier batches generated, by version and trigger.",
		}, []string{"version", "trigger"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ActiveStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_streams",
			Help:      "Open WebSocket panel streams.",
		}),
	}

	r.reg.MustRegister(
		r.IdentifiersTotal,
		r.BatchesTotal,
		r.HTTPRequestsTotal,
		r.HTTPRequestDuration,
		r.ActiveStreams,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveBatch records a batch of n identifiers.
func (r *Registry) ObserveBatch(version, trigger string, n int) {
	if version == "" {
		version = "unset"
	}
	r.IdentifiersTotal.WithLabelValues(version).Add(float64(n))
	r.BatchesTotal.WithLabelValues(version, trigger).Inc()
}

// ObserveRequest records a finished HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// TrackSessions registers a gauge that reports count() at scrape time.
func (r *Registry) TrackSessions(count func() int) error {
	return r.reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions",
		Help:      "Live browser sessions.",
	}, func() float64 { return float64(count()) }))
}

// Gatherer exposes the underlying registry for tests and custom exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the Prometheus text exposition.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
