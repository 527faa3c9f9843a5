package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry, the client data-plane
// instruments, and the HTTP server exposing them for scraping.
//
// All recording methods are nil-safe: a nil *Metrics records nothing, so
// callers never have to guard instrumentation sites.
type Metrics struct {
	// Server exposes the /metrics endpoint.
	Server *http.Server

	// Registry is an isolated Prometheus registry for this client instance,
	// avoiding metric name collisions when several services share a process.
	Registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	requestBytes      *prometheus.HistogramVec
	responseBytes     *prometheus.HistogramVec
	decodeFailures    *prometheus.CounterVec
}

// NewMetrics builds a Metrics instance with a dedicated registry. Every
// metric carries a constant service label taken from cfg.ServiceName. When
// cfg.EnableDefaultCollectors is set, the Go runtime, process and build info
// collectors are registered as well.
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	go m.Server.ListenAndServe()
//
// Metrics are then scrapeable at http://<cfg.Address>/metrics.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	sizeBuckets := prometheus.ExponentialBuckets(256, 4, 10)

	m.operationsTotal = createCounterVec("vanta_operations_total",
		"Total number of completed data-plane operations", []string{"operation", "status"})
	m.operationDuration = createHistogramVec("vanta_operation_duration_seconds",
		"End-to-end duration of data-plane operations in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.requestBytes = createHistogramVec("vanta_request_bytes",
		"Size of encoded request payloads in bytes", []string{"operation"}, sizeBuckets)
	m.responseBytes = createHistogramVec("vanta_response_bytes",
		"Size of raw response payloads in bytes", []string{"operation"}, sizeBuckets)
	m.decodeFailures = createCounterVec("vanta_decode_failures_total",
		"Responses rejected by the wire decoder", []string{"operation"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.requestBytes,
		m.responseBytes,
		m.decodeFailures,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}
