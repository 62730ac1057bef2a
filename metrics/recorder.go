package metrics

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "urlintake"

// Payload outcomes used as the "outcome" label.
const (
	OutcomeReceived = "received"
	OutcomeRejected = "rejected"
)

// Recorder owns the service's Prometheus collectors. Each Recorder has its
// own registry so several can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inFlight    prometheus.Gauge
	payloads    *prometheus.CounterVec
	payloadURLs prometheus.Histogram

	// Mirrors of the counters above, read by Report.
	received      atomic.Int64
	rejected      atomic.Int64
	inFlightCount atomic.Int64
}

// NewRecorder creates a Recorder with Go runtime and process collectors registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),
		payloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payloads_total",
			Help:      "Total number of submitted payloads by outcome",
		}, []string{"outcome"}),
		payloadURLs: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payload_urls",
			Help:      "Number of entries in accepted urls mappings",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

// PayloadReceived records an accepted payload carrying urlCount entries.
func (rec *Recorder) PayloadReceived(urlCount int) {
	rec.payloads.WithLabelValues(OutcomeReceived).Inc()
	rec.payloadURLs.Observe(float64(urlCount))
	rec.received.Add(1)
}

// PayloadRejected records a payload that failed validation.
func (rec *Recorder) PayloadRejected() {
	rec.payloads.WithLabelValues(OutcomeRejected).Inc()
	rec.rejected.Add(1)
}

// Handler serves the registry in the Prometheus exposition format.
func (rec *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(rec.registry, promhttp.HandlerOpts{Registry: rec.registry})
}

// Middleware is a mux.MiddlewareFunc counting requests per matched route.
func (rec *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.inFlight.Inc()
		rec.inFlightCount.Add(1)
		defer func() {
			rec.inFlight.Dec()
			rec.inFlightCount.Add(-1)
		}()

		route := routeTemplate(r)
		m := httpsnoop.CaptureMetrics(next, w, r)
		rec.requests.WithLabelValues(route, r.Method, strconv.Itoa(m.Code)).Inc()
		rec.duration.WithLabelValues(route).Observe(m.Duration.Seconds())
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}
