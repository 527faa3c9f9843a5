package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vantadb/vanta-go/v1/field"
)

func insertRequest(t *testing.T) *field.InsertRequest {
	t.Helper()
	ids, err := field.NewInt64("book_id", []int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	vecs, err := field.NewFloatVector("book_intro", [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	if err != nil {
		t.Fatal(err)
	}
	return &field.InsertRequest{Collection: "books", Fields: []field.Field{ids, vecs}}
}

func respond(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.NewEncoder(w).Encode(ResponseJSON{Code: 0, Data: raw}); err != nil {
		t.Fatal(err)
	}
}

func TestClientInsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathInsert {
			t.Errorf("path = %q, want %q", r.URL.Path, pathInsert)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("authorization header = %q", auth)
		}

		var req InsertRequestJSON
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.CollectionName != "books" || req.NumRows != 3 || len(req.FieldsData) != 2 {
			t.Errorf("request envelope wrong: %+v", req)
		}

		respond(t, w, InsertResultJSON{IDs: []any{1, 2, 3}, InsertCnt: 3})
	}))
	defer srv.Close()

	c, err := NewClient(FromEndpoint(srv.URL).WithAPIKey("secret"))
	if err != nil {
		t.Fatal(err)
	}

	ids, err := c.Insert(context.Background(), insertRequest(t))
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if ids.Len() != 3 || ids.Get(0) != int64(1) {
		t.Errorf("ids wrong: len=%d", ids.Len())
	}
}

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathSearch {
			t.Errorf("path = %q, want %q", r.URL.Path, pathSearch)
		}
		respond(t, w, SearchResultsJSON{
			CollectionName: "books",
			IDs:            []any{10, 11, 20},
			Scores:         []float32{0.9, 0.8, 0.95},
			TopK:           2,
			TopKs:          []int64{2, 1},
		})
	}))
	defer srv.Close()

	c, err := NewClient(FromEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	vecs, err := field.NewFloatVectors([][]float32{{0.1, 0.2}, {0.3, 0.4}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := c.Search(context.Background(), &field.SearchRequest{
		Collection:  "books",
		VectorField: "book_intro",
		Vectors:     vecs,
		TopK:        2,
		Metric:      field.MetricL2,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if res.CollectionName != "books" || res.Results.NumQueries() != 2 {
		t.Errorf("result wrong: %+v", res)
	}
}

func TestClientCalcDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, DistanceResultsJSON{Rows: 1, Cols: 2, Values: []float32{0.5, 1.5}})
	}))
	defer srv.Close()

	c, err := NewClient(FromEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	left, err := field.NewFloatVectors([][]float32{{0.1, 0.2}})
	if err != nil {
		t.Fatal(err)
	}
	right, err := field.NewFloatVectors([][]float32{{0.3, 0.4}, {0.5, 0.6}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := c.CalcDistance(context.Background(), &field.DistanceRequest{
		Left: left, Right: right, Metric: field.MetricL2,
	})
	if err != nil {
		t.Fatalf("CalcDistance returned error: %v", err)
	}
	if res.At(0, 1) != 1.5 {
		t.Errorf("At(0,1) = %v, want 1.5", res.At(0, 1))
	}
}

func TestClientSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(ResponseJSON{Code: 65535, Message: "collection not found"}); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	c, err := NewClient(FromEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Insert(context.Background(), insertRequest(t))
	if err == nil {
		t.Fatal("server error not surfaced")
	}
	if !strings.Contains(err.Error(), "65535") || !strings.Contains(err.Error(), "collection not found") {
		t.Errorf("server error rewritten: %v", err)
	}
}

func TestClientRejectsNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewClient(FromEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Insert(context.Background(), insertRequest(t)); err == nil {
		t.Fatal("non-2xx status not surfaced")
	}
}
