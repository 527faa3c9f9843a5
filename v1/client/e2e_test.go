package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantadb/vanta-go/v1/field"
	"github.com/vantadb/vanta-go/v1/wire"
)

// readEnvelope reads a request body, decompressing it when the client sent
// it zstd-compressed.
func readEnvelope(t *testing.T, r *http.Request) []byte {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	if r.Header.Get("Content-Encoding") == "zstd" {
		decoder, err := zstd.NewReader(nil)
		require.NoError(t, err)
		defer decoder.Close()
		body, err = decoder.DecodeAll(body, nil)
		require.NoError(t, err)
	}
	return body
}

// vantaHandler is a minimal in-process server speaking the binary channel.
// It unmarshals real request envelopes and answers with real response
// envelopes, so the test exercises the full encode, frame, transport,
// unframe, decode path.
func vantaHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(EndpointInsert, func(w http.ResponseWriter, r *http.Request) {
		body := readEnvelope(t, r)

		req, err := wire.UnmarshalInsertRequest(body)
		require.NoError(t, err)
		assert.Equal(t, "books", req.Collection)
		assert.Equal(t, uint64(3), req.NumRows)

		ids := make([]int64, req.NumRows)
		for i := range ids {
			ids[i] = int64(i + 1)
		}
		_, err = w.Write(wire.MarshalInsertResponse(&wire.InsertResponseData{
			Status:    &wire.Status{Code: 0},
			IDs:       &wire.IDsData{Int: ids},
			InsertCnt: int64(req.NumRows),
		}))
		require.NoError(t, err)
	})

	mux.HandleFunc(EndpointSearch, func(w http.ResponseWriter, r *http.Request) {
		body := readEnvelope(t, r)

		req, err := wire.UnmarshalSearchRequest(body)
		require.NoError(t, err)
		assert.Equal(t, "book_intro", req.VectorField)
		require.NotNil(t, req.Vectors)
		assert.Equal(t, int64(2), req.Vectors.Dim)

		idCol, err := field.NewInt64("book_id", []int64{10, 11, 20})
		require.NoError(t, err)
		fd, err := wire.FromField(idCol)
		require.NoError(t, err)

		_, err = w.Write(wire.MarshalSearchResponse(&wire.SearchResponseData{
			Status: &wire.Status{Code: 0},
			Results: &wire.SearchResultsData{
				Collection: req.Collection,
				Fields:     []*wire.FieldData{fd},
				IDs:        &wire.IDsData{Int: []int64{10, 11, 20}},
				Scores:     []float32{0.9, 0.8, 0.95},
				TopK:       req.TopK,
				TopKs:      []int64{2, 1},
			},
		}))
		require.NoError(t, err)
	})

	return mux
}

func TestClientEndToEnd(t *testing.T) {
	srv := httptest.NewServer(vantaHandler(t))
	defer srv.Close()

	c, err := NewClient(Params{Config: FromEndpoint(srv.URL)})
	require.NoError(t, err)

	ctx := context.Background()

	idCol, err := field.NewInt64("book_id", []int64{1, 2, 3})
	require.NoError(t, err)
	vecCol, err := field.NewFloatVector("book_intro", [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	require.NoError(t, err)

	ids, err := c.Insert(ctx, &field.InsertRequest{
		Collection: "books",
		Fields:     []field.Field{idCol, vecCol},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ids.Len())
	assert.Equal(t, int64(1), ids.Get(0))

	queries, err := field.NewFloatVectors([][]float32{{0.1, 0.2}, {0.3, 0.4}})
	require.NoError(t, err)
	results, err := c.Search(ctx, &field.SearchRequest{
		Collection:   "books",
		VectorField:  "book_intro",
		Vectors:      queries,
		TopK:         2,
		Metric:       field.MetricL2,
		OutputFields: []string{"book_id"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "books", res.CollectionName)
	require.Equal(t, 2, res.Results.NumQueries())
	require.Len(t, res.Results.Fields, 1)
	assert.Equal(t, field.DataTypeInt64, res.Results.Fields[0].Type())

	q0, err := res.Results.Query(0)
	require.NoError(t, err)
	assert.Equal(t, 2, q0.IDs.Len())
	assert.Equal(t, []float32{0.9, 0.8}, q0.Scores)
}

func TestClientEndToEndWithCompression(t *testing.T) {
	srv := httptest.NewServer(vantaHandler(t))
	defer srv.Close()

	c, err := NewClient(Params{Config: FromEndpoint(srv.URL).WithCompression(true)})
	require.NoError(t, err)

	idCol, err := field.NewInt64("book_id", []int64{1, 2, 3})
	require.NoError(t, err)
	vecCol, err := field.NewFloatVector("book_intro", [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	require.NoError(t, err)

	ids, err := c.Insert(context.Background(), &field.InsertRequest{
		Collection: "books",
		Fields:     []field.Field{idCol, vecCol},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ids.Len())
}
