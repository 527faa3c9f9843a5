package field

import (
	"errors"
	"testing"
)

func batchedResult(t *testing.T) *ResultData {
	t.Helper()
	return &ResultData{
		IDs:    NewInt64IDs(10, 11, 20),
		Scores: []float32{0.9, 0.8, 0.95},
		TopK:   2,
		TopKs:  []int64{2, 1},
	}
}

func TestResultDataValidate(t *testing.T) {
	r := batchedResult(t)
	if err := r.Validate(); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}
}

func TestResultDataValidateTopKsMismatch(t *testing.T) {
	r := batchedResult(t)
	r.TopKs = []int64{2, 2}
	if err := r.Validate(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("topKs sum mismatch: expected malformed response, got %v", err)
	}
}

func TestResultDataValidateRejectsNegativeTopKs(t *testing.T) {
	r := batchedResult(t)
	r.TopKs = []int64{-1, 4}
	if err := r.Validate(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("negative topKs entry: expected malformed response, got %v", err)
	}
}

func TestResultDataQueryRejectsBadSpans(t *testing.T) {
	r := batchedResult(t)
	r.TopKs = []int64{-1, 4}
	if _, err := r.Query(0); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("negative span: expected malformed response, got %v", err)
	}
	if _, err := r.Query(1); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("overflowing span: expected malformed response, got %v", err)
	}
}

func TestResultDataValidateScoreMismatch(t *testing.T) {
	r := batchedResult(t)
	r.Scores = r.Scores[:2]
	if err := r.Validate(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("score count mismatch: expected malformed response, got %v", err)
	}
}

func TestResultDataValidateFieldRowMismatch(t *testing.T) {
	r := batchedResult(t)
	short, err := NewInt64("book_id", []int64{10, 11})
	if err != nil {
		t.Fatal(err)
	}
	r.Fields = []Field{short}
	if err := r.Validate(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("field row mismatch: expected malformed response, got %v", err)
	}
}

func TestResultDataQuerySplitsByTopKs(t *testing.T) {
	r := batchedResult(t)
	if r.NumQueries() != 2 {
		t.Fatalf("NumQueries = %d, want 2", r.NumQueries())
	}

	q0, err := r.Query(0)
	if err != nil {
		t.Fatalf("Query(0) returned error: %v", err)
	}
	if q0.IDs.Len() != 2 || q0.IDs.Get(0) != int64(10) || q0.IDs.Get(1) != int64(11) {
		t.Errorf("query 0 ids wrong: len=%d", q0.IDs.Len())
	}
	if len(q0.Scores) != 2 || q0.Scores[0] != 0.9 {
		t.Errorf("query 0 scores wrong: %v", q0.Scores)
	}

	q1, err := r.Query(1)
	if err != nil {
		t.Fatalf("Query(1) returned error: %v", err)
	}
	if q1.IDs.Len() != 1 || q1.IDs.Get(0) != int64(20) {
		t.Errorf("query 1 ids wrong: len=%d", q1.IDs.Len())
	}
	if len(q1.Scores) != 1 || q1.Scores[0] != 0.95 {
		t.Errorf("query 1 scores wrong: %v", q1.Scores)
	}

	if _, err := r.Query(2); err == nil {
		t.Error("out-of-range query index accepted")
	}
}

func TestDistanceResultAt(t *testing.T) {
	d := &DistanceResult{Rows: 2, Cols: 3, Values: []float32{1, 2, 3, 4, 5, 6}}
	if err := d.Validate(); err != nil {
		t.Fatalf("valid matrix rejected: %v", err)
	}
	if d.At(0, 2) != 3 || d.At(1, 0) != 4 {
		t.Errorf("At wrong: %v, %v", d.At(0, 2), d.At(1, 0))
	}

	d.Values = d.Values[:5]
	if err := d.Validate(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("short matrix: expected malformed response, got %v", err)
	}
}
