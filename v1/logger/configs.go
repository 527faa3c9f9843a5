package logger

// Log severity levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum severity that gets emitted.
	Level string `yaml:"level" env:"VANTA_LOG_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"VANTA_SERVICE_NAME"`

	// EnableTracing makes the *WithContext methods extract the active
	// trace and span IDs and attach them to log entries.
	EnableTracing bool `yaml:"enable_tracing" env:"VANTA_LOG_TRACING"`
}

// DefaultConfig returns a Config suitable for production use.
func DefaultConfig() Config {
	return Config{
		Level:       Info,
		ServiceName: "vanta-client",
	}
}

// WithLevel sets the minimum severity.
func (c Config) WithLevel(level string) Config {
	c.Level = level
	return c
}

// WithServiceName sets the service field value.
func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

// WithTracing toggles trace context extraction.
func (c Config) WithTracing(enabled bool) Config {
	c.EnableTracing = enabled
	return c
}
