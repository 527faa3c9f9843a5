package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the tracer into an Fx application. It provides the
// NewClient factory and flushes pending spans on shutdown.
//
// A tracer.Config instance must be available in the dependency injection
// container.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers an OnStop hook that shuts down the
// TracerProvider, flushing any batched spans. Invoked automatically by
// FXModule.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			t.log.Info("shutting down tracer", nil, nil)
			if t.provider == nil {
				return nil
			}
			return t.provider.Shutdown(ctx)
		},
	})
}
