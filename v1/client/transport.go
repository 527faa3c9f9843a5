package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Binary-channel endpoint identifiers. The transport treats them as opaque
// routing keys.
const (
	EndpointInsert   = "/rpc/entities/insert"
	EndpointSearch   = "/rpc/entities/search"
	EndpointDistance = "/rpc/entities/distance"
	EndpointFlush    = "/rpc/collections/flush"
	EndpointDelete   = "/rpc/entities/delete"
)

const contentTypeRPC = "application/x-vanta-rpc"

// Transport moves one opaque encoded envelope to an endpoint and returns the
// raw response payload, or a transport-level failure. The data plane never
// interprets transport errors beyond success/failure branching.
type Transport interface {
	Do(ctx context.Context, endpoint string, body []byte) ([]byte, error)
}

// httpTransport posts binary envelopes over HTTP. With compression enabled it
// zstd-compresses request bodies and transparently decompresses responses
// that declare a zstd content encoding.
type httpTransport struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewHTTPTransport builds the default HTTP transport from Config.
func NewHTTPTransport(cfg *Config) (Transport, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("client: missing endpoint")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	t := &httpTransport{
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}

	// The decoder is always available so a compressed response can be read
	// even when request compression is off.
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("client: initializing zstd decoder: %w", err)
	}
	t.decoder = decoder

	if cfg.Compression {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("client: initializing zstd encoder: %w", err)
		}
		t.encoder = encoder
	}
	return t, nil
}

func (t *httpTransport) Do(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	var encoding string
	if t.encoder != nil {
		body = t.encoder.EncodeAll(body, nil)
		encoding = "zstd"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: building request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeRPC)
	req.Header.Set("Accept-Encoding", "zstd")
	if encoding != "" {
		req.Header.Set("Content-Encoding", encoding)
	}
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("client: %s returned status %d", endpoint, resp.StatusCode)
	}

	if resp.Header.Get("Content-Encoding") == "zstd" {
		raw, err = t.decoder.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("client: decompressing response: %w", err)
		}
	}
	return raw, nil
}
