package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the logger into an Fx application. It provides the
// NewLoggerClient factory and registers a shutdown hook that flushes any
// buffered entries.
//
// A logger.Config instance must be available in the dependency injection
// container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers an OnStop hook that calls Sync on the
// underlying Zap logger so buffered entries reach their destination before
// the application terminates. Invoked automatically by FXModule.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}
