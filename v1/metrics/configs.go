package metrics

// Config holds the metrics server settings.
type Config struct {
	// Address is the listen address for the /metrics endpoint.
	Address string `yaml:"address" env:"VANTA_METRICS_ADDRESS"`

	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"VANTA_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors alongside the client metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"VANTA_METRICS_DEFAULT_COLLECTORS"`
}

// DefaultConfig returns a Config suitable for production use.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		ServiceName:             "vanta-client",
		EnableDefaultCollectors: true,
	}
}

// WithAddress sets the listen address.
func (c Config) WithAddress(addr string) Config {
	c.Address = addr
	return c
}

// WithServiceName sets the service label value.
func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

// WithDefaultCollectors toggles the runtime collectors.
func (c Config) WithDefaultCollectors(enabled bool) Config {
	c.EnableDefaultCollectors = enabled
	return c
}
