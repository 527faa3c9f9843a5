// Package tracer sets up distributed tracing for the Vanta client with
// OpenTelemetry.
//
// NewClient builds a TracerProvider, optionally wires an OTLP HTTP exporter,
// and installs both the provider and the W3C trace-context propagator
// globally. The client packages create their spans through otel.Tracer, so
// enabling tracing is just a matter of constructing one Tracer (directly or
// through FXModule) before issuing requests.
//
// # Usage
//
//	t := tracer.NewClient(tracer.DefaultConfig().WithExport(true), log)
//
//	ctx, span := t.StartSpan(ctx, "ingest-batch")
//	defer span.End()
//
// Span export honors the standard OTEL_EXPORTER_OTLP_* environment
// variables for endpoint and headers.
package tracer
