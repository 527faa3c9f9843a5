package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Endpoint paths of the Vanta HTTP API.
const (
	pathInsert   = "/v1/entities/insert"
	pathSearch   = "/v1/entities/search"
	pathDistance = "/v1/entities/distance"
)

// Client is the JSON-channel client: it encodes channel-agnostic requests
// into the HTTP wire shapes, posts them, and decodes the response payloads
// back into typed columns. All protocol knowledge lives in the codec; the
// client only moves envelopes.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a JSON-channel client from Config.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("rest: missing endpoint")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// postJSON sends one request envelope and unmarshals the response envelope.
// A non-2xx status or a non-zero envelope code is a transport-level failure
// surfaced to the caller unchanged.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("rest: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("rest: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest: reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rest: %s returned status %d: %s", path, resp.StatusCode, string(raw))
	}

	var envelope ResponseJSON
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("rest: parsing response envelope: %w", err)
	}
	if envelope.Code != 0 {
		return fmt.Errorf("rest: server error %d: %s", envelope.Code, envelope.Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("rest: parsing response data: %w", err)
		}
	}
	return nil
}
