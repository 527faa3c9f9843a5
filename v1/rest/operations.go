package rest

import (
	"context"

	"github.com/vantadb/vanta-go/v1/field"
)

// Insert encodes and submits one insert batch, returning the identifiers
// assigned to the inserted rows. Any invariant violation aborts before the
// request is sent.
func (c *Client) Insert(ctx context.Context, req *field.InsertRequest) (field.IDs, error) {
	envelope, err := EncodeInsert(req)
	if err != nil {
		return field.IDs{}, err
	}

	var result InsertResultJSON
	if err := c.postJSON(ctx, pathInsert, envelope, &result); err != nil {
		return field.IDs{}, err
	}
	return field.NewIDs(result.IDs)
}

// Search encodes and submits one similarity search and decodes the result
// columns back into typed fields.
func (c *Client) Search(ctx context.Context, req *field.SearchRequest) (*field.SearchResult, error) {
	envelope, err := EncodeSearch(req)
	if err != nil {
		return nil, err
	}

	var results SearchResultsJSON
	if err := c.postJSON(ctx, pathSearch, envelope, &results); err != nil {
		return nil, err
	}
	return DecodeSearchResults(&results)
}

// CalcDistance encodes and submits one distance calculation between two
// vector inputs.
func (c *Client) CalcDistance(ctx context.Context, req *field.DistanceRequest) (*field.DistanceResult, error) {
	envelope, err := EncodeDistance(req)
	if err != nil {
		return nil, err
	}

	var results DistanceResultsJSON
	if err := c.postJSON(ctx, pathDistance, envelope, &results); err != nil {
		return nil, err
	}
	return DecodeDistanceResults(&results)
}
