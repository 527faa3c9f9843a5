package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/vantadb/vanta-go/v1/field"
	"github.com/vantadb/vanta-go/v1/wire"
)

// fakeTransport answers every endpoint with pre-marshaled responses,
// recording what was sent so tests can assert on the encoded envelopes.
type fakeTransport struct {
	mu        sync.Mutex
	calls     []string
	sent      map[string][]byte
	responses map[string][]byte
	err       error
}

func (f *fakeTransport) Do(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint)
	if f.sent == nil {
		f.sent = map[string][]byte{}
	}
	f.sent[endpoint] = body
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	resp, ok := f.responses[endpoint]
	if !ok {
		return nil, errors.New("unexpected endpoint " + endpoint)
	}
	return resp, nil
}

func newTestClient(t *testing.T, transport Transport) *Client {
	t.Helper()
	c, err := NewClient(Params{
		Config:    FromEndpoint("http://localhost:19530"),
		Transport: transport,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestClientInsert(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{
		EndpointInsert: wire.MarshalInsertResponse(&wire.InsertResponseData{
			Status:    &wire.Status{Code: 0},
			IDs:       &wire.IDsData{Int: []int64{1, 2, 3}},
			InsertCnt: 3,
		}),
	}}
	c := newTestClient(t, ft)

	ids, err := field.NewInt64("book_id", []int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	vecs, err := field.NewFloatVector("book_intro", [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Insert(context.Background(), &field.InsertRequest{
		Collection: "books",
		Fields:     []field.Field{ids, vecs},
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if got.Len() != 3 || got.Get(2) != int64(3) {
		t.Errorf("ids wrong: len=%d", got.Len())
	}
	if len(ft.calls) != 1 || ft.calls[0] != EndpointInsert {
		t.Errorf("calls = %v", ft.calls)
	}
}

func TestClientInsertRejectsInvalidBatch(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{}}
	c := newTestClient(t, ft)

	ids, err := field.NewInt64("book_id", []int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	short, err := field.NewFloatVector("book_intro", [][]float32{{0.1, 0.2}})
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Insert(context.Background(), &field.InsertRequest{
		Collection: "books",
		Fields:     []field.Field{ids, short},
	})
	if !errors.Is(err, field.ErrSchemaMismatch) {
		t.Fatalf("row mismatch: expected schema mismatch, got %v", err)
	}
	if len(ft.calls) != 0 {
		t.Error("invalid batch reached the transport")
	}
}

func searchResponse() []byte {
	return wire.MarshalSearchResponse(&wire.SearchResponseData{
		Status: &wire.Status{Code: 0},
		Results: &wire.SearchResultsData{
			Collection: "books",
			IDs:        &wire.IDsData{Int: []int64{10, 11, 20}},
			Scores:     []float32{0.9, 0.8, 0.95},
			TopK:       2,
			TopKs:      []int64{2, 1},
		},
	})
}

func searchRequest(t *testing.T) *field.SearchRequest {
	t.Helper()
	vecs, err := field.NewFloatVectors([][]float32{{0.1, 0.2}, {0.3, 0.4}})
	if err != nil {
		t.Fatal(err)
	}
	return &field.SearchRequest{
		Collection:  "books",
		VectorField: "book_intro",
		Vectors:     vecs,
		TopK:        2,
		Metric:      field.MetricL2,
	}
}

func TestClientSearch(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{EndpointSearch: searchResponse()}}
	c := newTestClient(t, ft)

	results, err := c.Search(context.Background(), searchRequest(t))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.CollectionName != "books" || res.Results.NumQueries() != 2 {
		t.Errorf("result wrong: %+v", res)
	}

	q1, err := res.Results.Query(1)
	if err != nil {
		t.Fatal(err)
	}
	if q1.IDs.Get(0) != int64(20) || q1.Scores[0] != 0.95 {
		t.Errorf("second query wrong: %+v", q1)
	}
}

func TestClientSearchFanOutPreservesOrder(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{EndpointSearch: searchResponse()}}
	c := newTestClient(t, ft)

	reqs := make([]*field.SearchRequest, 7)
	for i := range reqs {
		reqs[i] = searchRequest(t)
	}
	results, err := c.Search(context.Background(), reqs...)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != len(reqs) {
		t.Fatalf("got %d results, want %d", len(results), len(reqs))
	}
	for i, res := range results {
		if res == nil || res.CollectionName != "books" {
			t.Errorf("result [%d] missing or wrong", i)
		}
	}
	if len(ft.calls) != len(reqs) {
		t.Errorf("transport called %d times, want %d", len(ft.calls), len(reqs))
	}
}

func TestClientSearchValidatesWholeBatchUpFront(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{EndpointSearch: searchResponse()}}
	c := newTestClient(t, ft)

	bad := searchRequest(t)
	bad.TopK = 0
	_, err := c.Search(context.Background(), searchRequest(t), bad)
	if !errors.Is(err, field.ErrSchemaMismatch) {
		t.Fatalf("invalid batch member: expected schema mismatch, got %v", err)
	}
	if len(ft.calls) != 0 {
		t.Error("batch with invalid member reached the transport")
	}
}

func TestClientSurfacesServerError(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{
		EndpointSearch: wire.MarshalSearchResponse(&wire.SearchResponseData{
			Status: &wire.Status{Code: 65535, Reason: "collection not loaded"},
		}),
	}}
	c := newTestClient(t, ft)

	_, err := c.Search(context.Background(), searchRequest(t))
	if err == nil {
		t.Fatal("server error not surfaced")
	}
	if !strings.Contains(err.Error(), "65535") || !strings.Contains(err.Error(), "collection not loaded") {
		t.Errorf("server error rewritten: %v", err)
	}
}

func TestClientCalcDistance(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{
		EndpointDistance: wire.MarshalDistanceResponse(&wire.DistanceResponseData{
			Status:  &wire.Status{Code: 0},
			Results: &wire.DistanceResultsData{Rows: 1, Cols: 2, Values: []float32{0.5, 1.5}},
		}),
	}}
	c := newTestClient(t, ft)

	left, err := field.NewFloatVectors([][]float32{{0.1, 0.2}})
	if err != nil {
		t.Fatal(err)
	}
	right, err := field.NewIDVectors("books", "book_intro", field.NewInt64IDs(7, 8))
	if err != nil {
		t.Fatal(err)
	}

	res, err := c.CalcDistance(context.Background(), &field.DistanceRequest{
		Left: left, Right: right, Metric: field.MetricL2,
	})
	if err != nil {
		t.Fatalf("CalcDistance returned error: %v", err)
	}
	if res.At(0, 0) != 0.5 || res.At(0, 1) != 1.5 {
		t.Errorf("matrix wrong: %+v", res)
	}
}

func TestClientDeleteAndFlush(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{
		EndpointDelete: wire.MarshalDeleteResponse(&wire.DeleteResponseData{
			Status:    &wire.Status{Code: 0},
			DeleteCnt: 5,
		}),
		EndpointFlush: wire.MarshalFlushResponse(&wire.FlushResponseData{
			Status: &wire.Status{Code: 0},
		}),
	}}
	c := newTestClient(t, ft)

	cnt, err := c.Delete(context.Background(), &field.DeleteRequest{
		Collection:  "books",
		Expr:        "book_id in [1,2,3,4,5]",
		Consistency: field.ConsistencyBounded,
	})
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cnt != 5 {
		t.Errorf("delete count = %d, want 5", cnt)
	}

	sent, err := wire.UnmarshalDeleteRequest(ft.sent[EndpointDelete])
	if err != nil {
		t.Fatal(err)
	}
	if sent.Expr != "book_id in [1,2,3,4,5]" || sent.Consistency != int32(field.ConsistencyBounded) {
		t.Errorf("delete envelope wrong: %+v", sent)
	}

	if err := c.Flush(context.Background(), "books"); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}

	del := &field.DeleteRequest{Collection: "books"}
	if _, err := c.Delete(context.Background(), del); !errors.Is(err, field.ErrSchemaMismatch) {
		t.Errorf("empty expr: expected schema mismatch, got %v", err)
	}
	if err := c.Flush(context.Background()); !errors.Is(err, field.ErrSchemaMismatch) {
		t.Errorf("no collections: expected schema mismatch, got %v", err)
	}
}

func TestClientMalformedResponse(t *testing.T) {
	ft := &fakeTransport{responses: map[string][]byte{
		EndpointSearch: {0xFF, 0x01, 0x02},
	}}
	c := newTestClient(t, ft)

	_, err := c.Search(context.Background(), searchRequest(t))
	if !errors.Is(err, field.ErrMalformedResponse) {
		t.Errorf("garbage response: expected malformed response, got %v", err)
	}
}
