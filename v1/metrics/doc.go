// Package metrics exposes Prometheus instrumentation for the Vanta client
// data plane.
//
// Each Metrics instance owns an isolated registry wrapped with a constant
// service label, five built-in instruments covering operation counts,
// latencies, payload sizes and decode failures, and an HTTP server exposing
// the /metrics endpoint for scraping.
//
// # Nil Safety
//
// The recording methods (ObserveOperation, RecordFailure,
// RecordDecodeFailure) are safe on a nil receiver. Instrumented code can
// therefore hold a *Metrics that was never constructed, which keeps metrics
// strictly optional for library consumers.
//
// # Usage
//
//	m := metrics.NewMetrics(metrics.DefaultConfig().WithAddress(":9091"))
//	go m.Server.ListenAndServe()
//
//	m.ObserveOperation("search", time.Since(start), len(body), len(raw))
//
// With Fx, use FXModule and provide a metrics.Config; the server lifecycle
// is then managed for you.
package metrics
