// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the extraction pipeline. Collectors live in a private registry so
// tests can build isolated instances.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	extractionsTotal   *prometheus.CounterVec
	extractionDuration *prometheus.HistogramVec
	enhancementsTotal  *prometheus.CounterVec
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kalakaar",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kalakaar",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kalakaar",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	extractionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kalakaar",
			Subsystem: "pipeline",
			Name:      "extractions_total",
			Help:      "Completed extractions by method and outcome.",
		},
		[]string{"service", "method", "outcome"},
	)
	extractionDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kalakaar",
			Subsystem: "pipeline",
			Name:      "extraction_duration_seconds",
			Help:      "End-to-end extraction duration in seconds.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 45, 90},
		},
		[]string{"service"},
	)
	enhancementsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kalakaar",
			Subsystem: "pipeline",
			Name:      "enhancements_total",
			Help:      "Enhancement attempts by outcome.",
		},
		[]string{"service", "outcome"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		extractionsTotal,
		extractionDuration,
		enhancementsTotal,
	)

	return &Metrics{
		registry:           registry,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		extractionsTotal:   extractionsTotal,
		extractionDuration: extractionDuration,
		enhancementsTotal:  enhancementsTotal,
	}
}

// Handler serves the /metrics endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) RecordExtraction(service, method, outcome string, duration time.Duration) {
	m.extractionsTotal.WithLabelValues(service, method, outcome).Inc()
	m.extractionDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *Metrics) RecordEnhancement(service, outcome string) {
	m.enhancementsTotal.WithLabelValues(service, outcome).Inc()
}

// normalizePath collapses ID-carrying routes so label cardinality stays
// bounded.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/api/artists/") {
		rest := strings.TrimPrefix(path, "/api/artists/")
		if strings.HasSuffix(rest, "/enhance") {
			return "/api/artists/{id}/enhance"
		}
		if rest != "" && rest != "export" {
			return "/api/artists/{id}"
		}
	}
	return path
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
