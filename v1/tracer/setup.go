package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/vantadb/vanta-go/v1/logger"
)

// Tracer wraps an OpenTelemetry TracerProvider with span helpers and
// lifecycle management. Constructing one also installs the provider and the
// W3C trace-context propagator globally, so instrumented code anywhere in
// the process picks it up through otel.Tracer.
//
// Thread-safe; share a single instance across goroutines.
type Tracer struct {
	provider *trace.TracerProvider
	log      *logger.Logger
}

// NewClient builds a Tracer from cfg. When export is enabled, spans are
// batched to the OTLP HTTP endpoint configured through the standard
// OTEL_EXPORTER_OTLP_* environment variables; a failure to set up the
// exporter is fatal. The service name and deployment environment are
// attached as resource attributes on every span.
func NewClient(cfg Config, log *logger.Logger) *Tracer {
	if log == nil {
		log = logger.NewNop()
	}

	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			log.Fatal("cannot initialize trace exporter", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Debug("tracer initialized", nil, map[string]interface{}{
		"service": cfg.ServiceName,
		"export":  cfg.EnableExport,
	})
	return &Tracer{provider: tp, log: log}
}
