package client

import "time"

// Config holds connection and behavior settings for the binary-channel
// client.
//
// Example:
//
//	cfg := client.DefaultConfig()
//	cfg.Endpoint = "http://localhost:19530"
//	cfg.Compression = true
type Config struct {
	// Endpoint is the base URL of the Vanta RPC gateway, e.g. "http://localhost:19530".
	Endpoint string `yaml:"endpoint" env:"VANTA_ENDPOINT"`

	// APIKey is an optional authentication token for secured deployments.
	APIKey string `yaml:"api_key" env:"VANTA_API_KEY"`

	// Timeout is the maximum duration of one request.
	Timeout time.Duration `yaml:"timeout" env:"VANTA_TIMEOUT"`

	// Compression enables zstd compression of request and response envelopes.
	Compression bool `yaml:"compression" env:"VANTA_COMPRESSION"`

	// MaxConcurrentSearches bounds the fan-out of batched searches.
	MaxConcurrentSearches int `yaml:"max_concurrent_searches" env:"VANTA_MAX_CONCURRENT_SEARCHES"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:              "http://localhost:19530",
		Timeout:               30 * time.Second,
		Compression:           false,
		MaxConcurrentSearches: 10,
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(url string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = url
	return cfg
}

// WithAPIKey sets the authentication token.
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// WithCompression toggles zstd envelope compression.
func (c *Config) WithCompression(enabled bool) *Config {
	c.Compression = enabled
	return c
}
