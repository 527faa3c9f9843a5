package client

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vantadb/vanta-go/v1/field"
	"github.com/vantadb/vanta-go/v1/wire"
)

const tracerName = "github.com/vantadb/vanta-go/v1/client"

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// checkStatus branches on the (errorCode, message) pair every response
// envelope opens with. Server errors pass through unchanged.
func checkStatus(s *wire.Status) error {
	if s == nil {
		return fmt.Errorf("client: response missing status: %w", field.ErrMalformedResponse)
	}
	if s.Code != 0 {
		return fmt.Errorf("client: server error %d: %s", s.Code, s.Reason)
	}
	return nil
}

// Insert encodes and submits one insert batch, returning the identifiers
// assigned to the inserted rows. Unequal row counts or a ragged vector row
// abort the call before any bytes are sent.
func (c *Client) Insert(ctx context.Context, req *field.InsertRequest) (field.IDs, error) {
	ctx, span := startSpan(ctx, "vanta.Insert",
		attribute.String("vanta.collection", req.Collection))
	defer span.End()
	start := time.Now()

	envelope, err := wire.EncodeInsert(req)
	if err != nil {
		return field.IDs{}, c.fail(span, "insert", err)
	}
	body := wire.MarshalInsertRequest(envelope)

	raw, err := c.transport.Do(ctx, EndpointInsert, body)
	if err != nil {
		return field.IDs{}, c.fail(span, "insert", err)
	}

	resp, err := wire.UnmarshalInsertResponse(raw)
	if err != nil {
		return field.IDs{}, c.fail(span, "insert", err)
	}
	if err := checkStatus(resp.Status); err != nil {
		return field.IDs{}, c.fail(span, "insert", err)
	}

	c.metrics.ObserveOperation("insert", time.Since(start), len(body), len(raw))
	c.log.Debug("insert completed", nil, map[string]interface{}{
		"collection": req.Collection,
		"rows":       req.RowCount(),
		"inserted":   resp.InsertCnt,
	})
	return wire.ToIDs(resp.IDs), nil
}

// Search submits one or more similarity searches. Multiple requests fan out
// concurrently, bounded by Config.MaxConcurrentSearches; results are returned
// in request order. A single invalid request fails the whole batch before
// anything is sent.
func (c *Client) Search(ctx context.Context, reqs ...*field.SearchRequest) ([]*field.SearchResult, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("client: at least one search request is required: %w", field.ErrSchemaMismatch)
	}

	// Validate everything up front so a bad request cannot abort a batch
	// halfway through transmission.
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("request [%d]: %w", i, err)
		}
	}

	results := make([]*field.SearchResult, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrentSearches())

	for i, req := range reqs {
		g.Go(func() error {
			res, err := c.searchOne(ctx, req)
			if err != nil {
				return fmt.Errorf("request [%d]: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) searchOne(ctx context.Context, req *field.SearchRequest) (*field.SearchResult, error) {
	ctx, span := startSpan(ctx, "vanta.Search",
		attribute.String("vanta.collection", req.Collection),
		attribute.Int("vanta.topk", req.TopK))
	defer span.End()
	start := time.Now()

	envelope, err := wire.EncodeSearch(req)
	if err != nil {
		return nil, c.fail(span, "search", err)
	}
	body := wire.MarshalSearchRequest(envelope)

	raw, err := c.transport.Do(ctx, EndpointSearch, body)
	if err != nil {
		return nil, c.fail(span, "search", err)
	}

	resp, err := wire.UnmarshalSearchResponse(raw)
	if err != nil {
		return nil, c.fail(span, "search", err)
	}
	if err := checkStatus(resp.Status); err != nil {
		return nil, c.fail(span, "search", err)
	}

	result, err := wire.DecodeSearchResults(resp.Results)
	if err != nil {
		c.metrics.RecordDecodeFailure("search")
		return nil, c.fail(span, "search", err)
	}

	c.metrics.ObserveOperation("search", time.Since(start), len(body), len(raw))
	c.log.Debug("search completed", nil, map[string]interface{}{
		"collection": req.Collection,
		"queries":    result.Results.NumQueries(),
		"hits":       result.Results.IDs.Len(),
	})
	return result, nil
}

// CalcDistance submits one distance calculation between two vector inputs
// and decodes the resulting matrix.
func (c *Client) CalcDistance(ctx context.Context, req *field.DistanceRequest) (*field.DistanceResult, error) {
	ctx, span := startSpan(ctx, "vanta.CalcDistance",
		attribute.String("vanta.metric", string(req.Metric)))
	defer span.End()
	start := time.Now()

	envelope, err := wire.EncodeDistance(req)
	if err != nil {
		return nil, c.fail(span, "distance", err)
	}
	body := wire.MarshalDistanceRequest(envelope)

	raw, err := c.transport.Do(ctx, EndpointDistance, body)
	if err != nil {
		return nil, c.fail(span, "distance", err)
	}

	resp, err := wire.UnmarshalDistanceResponse(raw)
	if err != nil {
		return nil, c.fail(span, "distance", err)
	}
	if err := checkStatus(resp.Status); err != nil {
		return nil, c.fail(span, "distance", err)
	}

	result, err := wire.DecodeDistanceResults(resp.Results)
	if err != nil {
		c.metrics.RecordDecodeFailure("distance")
		return nil, c.fail(span, "distance", err)
	}

	c.metrics.ObserveOperation("distance", time.Since(start), len(body), len(raw))
	return result, nil
}

// Delete removes rows matching a filter expression and returns the removed
// row count.
func (c *Client) Delete(ctx context.Context, req *field.DeleteRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	ctx, span := startSpan(ctx, "vanta.Delete",
		attribute.String("vanta.collection", req.Collection))
	defer span.End()
	start := time.Now()

	body := wire.MarshalDeleteRequest(&wire.DeleteRequestData{
		Collection:  req.Collection,
		Partition:   req.Partition,
		Expr:        req.Expr,
		Consistency: int32(req.Consistency),
	})

	raw, err := c.transport.Do(ctx, EndpointDelete, body)
	if err != nil {
		return 0, c.fail(span, "delete", err)
	}

	resp, err := wire.UnmarshalDeleteResponse(raw)
	if err != nil {
		return 0, c.fail(span, "delete", err)
	}
	if err := checkStatus(resp.Status); err != nil {
		return 0, c.fail(span, "delete", err)
	}

	c.metrics.ObserveOperation("delete", time.Since(start), len(body), len(raw))
	return resp.DeleteCnt, nil
}

// Flush asks the server to persist the named collections' pending writes.
func (c *Client) Flush(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		return fmt.Errorf("flush: at least one collection is required: %w", field.ErrSchemaMismatch)
	}

	ctx, span := startSpan(ctx, "vanta.Flush")
	defer span.End()
	start := time.Now()

	body := wire.MarshalFlushRequest(&wire.FlushRequestData{Collections: collections})

	raw, err := c.transport.Do(ctx, EndpointFlush, body)
	if err != nil {
		return c.fail(span, "flush", err)
	}

	resp, err := wire.UnmarshalFlushResponse(raw)
	if err != nil {
		return c.fail(span, "flush", err)
	}
	if err := checkStatus(resp.Status); err != nil {
		return c.fail(span, "flush", err)
	}

	c.metrics.ObserveOperation("flush", time.Since(start), len(body), len(raw))
	return nil
}

// fail records the error on the span and the metrics, logs it, and hands it
// back unchanged.
func (c *Client) fail(span trace.Span, operation string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.metrics.RecordFailure(operation)
	c.log.Error("operation failed", err, map[string]interface{}{
		"operation": operation,
	})
	return err
}
