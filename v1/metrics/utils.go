package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ObserveOperation records one successful operation: its count, duration and
// payload sizes in both directions. Safe to call on a nil receiver.
func (m *Metrics) ObserveOperation(operation string, d time.Duration, reqBytes, respBytes int) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, "success").Inc()
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
	m.requestBytes.WithLabelValues(operation).Observe(float64(reqBytes))
	m.responseBytes.WithLabelValues(operation).Observe(float64(respBytes))
}

// RecordDecodeFailure counts a response the decoder rejected. Safe to call
// on a nil receiver.
func (m *Metrics) RecordDecodeFailure(operation string) {
	if m == nil {
		return
	}
	m.decodeFailures.WithLabelValues(operation).Inc()
}

// RecordFailure counts a failed operation. Safe to call on a nil receiver.
func (m *Metrics) RecordFailure(operation string) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, "error").Inc()
}

// CreateCounter creates and registers an additional CounterVec.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates and registers an additional HistogramVec.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates and registers an additional GaugeVec.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
