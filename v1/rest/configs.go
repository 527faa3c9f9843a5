package rest

import "time"

// Config holds connection settings for the JSON-channel client.
//
// Example:
//
//	cfg := rest.DefaultConfig()
//	cfg.Endpoint = "http://localhost:19121"
//	cfg.APIKey = os.Getenv("VANTA_API_KEY")
type Config struct {
	// Endpoint is the base URL of the Vanta HTTP API, e.g. "http://localhost:19121".
	Endpoint string `yaml:"endpoint" env:"VANTA_HTTP_ENDPOINT"`

	// APIKey is an optional bearer token for secured deployments.
	APIKey string `yaml:"api_key" env:"VANTA_API_KEY"`

	// Timeout is the maximum duration of one HTTP request.
	Timeout time.Duration `yaml:"timeout" env:"VANTA_HTTP_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "http://localhost:19121",
		Timeout:  30 * time.Second,
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(url string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = url
	return cfg
}

// WithAPIKey sets the bearer token.
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}
