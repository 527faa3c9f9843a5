package client

import (
	"go.uber.org/fx"
)

// FXModule integrates the binary-channel client into an Fx application. It
// provides the NewClient factory; Transport, logger and metrics are picked
// up from the container when present and defaulted otherwise.
//
// A client.Config instance must be available in the dependency injection
// container.
var FXModule = fx.Module("vanta_client",
	fx.Provide(
		NewClient,
	),
)
