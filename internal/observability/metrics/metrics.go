// Package metrics exposes Prometheus collectors for HTTP traffic and application outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result constants for metric labels.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultNoop     = "noop"
)

// DefaultNamespace is used when no namespace is configured.
const DefaultNamespace = "jobtracker"

// ApplicationOperation captures one service operation for metric emission.
type ApplicationOperation struct {
	Operation string
	Result    string
	Duration  time.Duration
	Err       error
}

// Registry owns a private Prometheus registry and the collectors registered on it.
// It is safe for concurrent use.
type Registry struct {
	reg *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	appOperations *prometheus.CounterVec
	appDuration   *prometheus.HistogramVec
}

// New builds a Registry with collectors under the given namespace.
func New(namespace string) *Registry {
	if strings.TrimSpace(namespace) == "" {
		namespace = DefaultNamespace
	}

	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		appOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "operations_total",
			Help:      "Total number of application service operations by outcome.",
		}, []string{"operation", "result", "error_class"}),
		appDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "operation_duration_seconds",
			Help:      "Duration of application service operations.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}, []string{"operation"}),
	}

	r.reg.MustRegister(
		r.httpInFlight,
		r.httpRequests,
		r.httpDuration,
		r.appOperations,
		r.appDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return r
}

// Gatherer exposes the underlying registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler returns an HTTP handler exposing the registered metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// ObserveApplicationOperation records the outcome and latency of a service operation.
func (r *Registry) ObserveApplicationOperation(in ApplicationOperation) {
	if r == nil {
		return
	}
	op := in.Operation
	if op == "" {
		op = "unknown"
	}
	result := in.Result
	if result == "" {
		result = ResultSuccess
	}

	class := ""
	if in.Err != nil && result == ResultError {
		class = Classify(in.Err)
	}

	r.appOperations.WithLabelValues(op, result, class).Inc()
	if in.Duration > 0 {
		r.appDuration.WithLabelValues(op).Observe(in.Duration.Seconds())
	}
}

// InstrumentHandler wraps next with HTTP request metrics. Requests are labeled
// with the ServeMux pattern that matched them, so path parameters do not
// explode label cardinality.
func (r *Registry) InstrumentHandler(next http.Handler) http.Handler {
	if r == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		r.httpInFlight.Inc()
		defer r.httpInFlight.Dec()

		next.ServeHTTP(rec, req)

		method := strings.ToUpper(req.Method)
		route := routeLabel(req)
		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// routeLabel prefers the matched mux pattern without its method prefix.
func routeLabel(req *http.Request) string {
	if p := req.Pattern; p != "" {
		if _, path, ok := strings.Cut(p, " "); ok {
			return path
		}
		return p
	}
	return "unmatched"
}
