package tracer

// Config holds the tracer settings. The OTLP endpoint itself is taken from
// the standard OTEL_EXPORTER_OTLP_* environment variables.
type Config struct {
	// ServiceName identifies this client in trace backends.
	ServiceName string `yaml:"service_name" env:"VANTA_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment.
	AppEnv string `yaml:"app_env" env:"VANTA_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false, spans are
	// created but never leave the process.
	EnableExport bool `yaml:"enable_export" env:"VANTA_TRACE_EXPORT"`
}

// DefaultConfig returns a Config suitable for local development.
func DefaultConfig() Config {
	return Config{
		ServiceName: "vanta-client",
		AppEnv:      "development",
	}
}

// WithServiceName sets the service name resource attribute.
func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

// WithAppEnv sets the deployment environment tag.
func (c Config) WithAppEnv(env string) Config {
	c.AppEnv = env
	return c
}

// WithExport toggles the OTLP exporter.
func (c Config) WithExport(enabled bool) Config {
	c.EnableExport = enabled
	return c
}
