package client

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/vantadb/vanta-go/v1/logger"
	"github.com/vantadb/vanta-go/v1/metrics"
)

// Client is the binary-channel client: it encodes channel-agnostic requests
// into compact RPC envelopes, hands them to a Transport, and decodes the raw
// response payloads back into typed columns. The Transport owns connection
// management, retries and backpressure; the client owns only the byte-level
// encoding contract.
type Client struct {
	cfg       *Config
	transport Transport
	log       *logger.Logger
	metrics   *metrics.Metrics
}

// Params collects the client's dependencies for Fx injection. Logger and
// Metrics are optional; a nop logger and nil-safe metrics are substituted
// when absent.
type Params struct {
	fx.In

	Config    *Config
	Transport Transport        `optional:"true"`
	Logger    *logger.Logger   `optional:"true"`
	Metrics   *metrics.Metrics `optional:"true"`
}

// NewClient constructs a binary-channel client. When no Transport is
// supplied, the default HTTP transport is built from Config.
func NewClient(p Params) (*Client, error) {
	if p.Config == nil {
		return nil, fmt.Errorf("client: config is required")
	}

	transport := p.Transport
	if transport == nil {
		t, err := NewHTTPTransport(p.Config)
		if err != nil {
			return nil, err
		}
		transport = t
	}

	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	c := &Client{
		cfg:       p.Config,
		transport: transport,
		log:       log,
		metrics:   p.Metrics,
	}

	log.Debug("vanta client initialized", nil, map[string]interface{}{
		"endpoint":    p.Config.Endpoint,
		"compression": p.Config.Compression,
	})
	return c, nil
}

// maxConcurrentSearches returns the configured fan-out bound.
func (c *Client) maxConcurrentSearches() int {
	if c.cfg.MaxConcurrentSearches > 0 {
		return c.cfg.MaxConcurrentSearches
	}
	return 10
}
