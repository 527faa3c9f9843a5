package rest

import "go.uber.org/fx"

// FXModule integrates the JSON-channel client into an Fx application.
//
// Usage:
//
//	app := fx.New(
//	    rest.FXModule,
//	    fx.Supply(rest.DefaultConfig()),
//	)
//
// A *rest.Config must be available in the dependency injection container.
var FXModule = fx.Module("vanta_rest",
	fx.Provide(
		NewClient,
	),
)
