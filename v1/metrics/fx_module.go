package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/vantadb/vanta-go/v1/logger"
)

// FXModule integrates the Prometheus metrics server into an Fx application.
// It provides the NewMetrics factory and manages startup and graceful
// shutdown of the scrape endpoint.
//
// A metrics.Config instance must be available in the dependency injection
// container; a logger is optional.
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// LifecycleParams collects the lifecycle hook's dependencies.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    *logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle launches the scrape server on start and shuts it
// down gracefully on stop. Invoked automatically by FXModule.
func RegisterMetricsLifecycle(p LifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("metrics server listening", nil, map[string]interface{}{
					"address": p.Metrics.Server.Addr,
				})
				if err := p.Metrics.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server terminated", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("metrics server shutting down", nil, nil)
			return p.Metrics.Server.Shutdown(ctx)
		},
	})
}
