package field

import "fmt"

// ResultData aggregates the columns of a decoded search response: one
// reconstructed Field per requested output field, the matched ids, per-hit
// scores, and the per-query hit counts. It is built only by the decode paths
// and is immutable afterwards.
type ResultData struct {
	// Fields are the reconstructed output columns. Each has RowCount equal
	// to the total hit count.
	Fields []Field

	// IDs are the matched identifiers across all queries, in query order.
	IDs IDs

	// Scores are the per-hit similarity scores, parallel to IDs.
	Scores []float32

	// TopK is the hit count requested by the search.
	TopK int64

	// TopKs is the hit count actually returned for each query in the batch;
	// queries may return fewer hits than requested.
	TopKs []int64
}

// Validate checks the parallel-array invariants: every TopKs entry is
// non-negative, sum(TopKs) == len(IDs) == len(Scores), and every field's row
// count equals the total hit count. Violations are malformed responses, never
// repaired.
func (r *ResultData) Validate() error {
	var total int64
	for i, k := range r.TopKs {
		if k < 0 {
			return fmt.Errorf("result: query %d has negative hit count %d: %w",
				i, k, ErrMalformedResponse)
		}
		total += k
	}
	if int(total) != r.IDs.Len() {
		return fmt.Errorf("result: topKs sum to %d but %d ids returned: %w",
			total, r.IDs.Len(), ErrMalformedResponse)
	}
	if r.IDs.Len() != len(r.Scores) {
		return fmt.Errorf("result: %d ids but %d scores: %w",
			r.IDs.Len(), len(r.Scores), ErrMalformedResponse)
	}
	for _, f := range r.Fields {
		if f.RowCount() != r.IDs.Len() {
			return fmt.Errorf("result: field %q has %d rows but %d ids returned: %w",
				f.Name(), f.RowCount(), r.IDs.Len(), ErrMalformedResponse)
		}
	}
	return nil
}

// NumQueries returns the number of queries in the batched search.
func (r *ResultData) NumQueries() int { return len(r.TopKs) }

// Query returns the hits of the i-th query as a slice into the aggregate
// id and score arrays.
func (r *ResultData) Query(i int) (ResultSet, error) {
	if i < 0 || i >= len(r.TopKs) {
		return ResultSet{}, fmt.Errorf("result: query index %d out of range [0,%d)", i, len(r.TopKs))
	}
	var lo int64
	for _, k := range r.TopKs[:i] {
		lo += k
	}
	hi := lo + r.TopKs[i]
	if lo < 0 || hi < lo || hi > int64(r.IDs.Len()) || hi > int64(len(r.Scores)) {
		return ResultSet{}, fmt.Errorf("result: query %d spans hits [%d,%d) of %d: %w",
			i, lo, hi, r.IDs.Len(), ErrMalformedResponse)
	}
	return ResultSet{
		IDs:    r.IDs.Slice(int(lo), int(hi)),
		Scores: r.Scores[lo:hi],
	}, nil
}

// ResultSet is the hits of a single query within a batched search.
type ResultSet struct {
	IDs    IDs
	Scores []float32
}

// SearchResult is a decoded search response: the collection it came from plus
// the aggregated result columns.
type SearchResult struct {
	CollectionName string
	Results        ResultData
}

// DistanceResult is a decoded distance-calculation response: a dense
// row-major matrix with one row per left operand and one column per right
// operand.
type DistanceResult struct {
	Rows   int
	Cols   int
	Values []float32
}

// At returns the distance between left operand i and right operand j.
func (d *DistanceResult) At(i, j int) float32 {
	return d.Values[i*d.Cols+j]
}

// Validate checks that the flat value buffer matches the declared shape.
func (d *DistanceResult) Validate() error {
	if len(d.Values) != d.Rows*d.Cols {
		return fmt.Errorf("distance result: %d values for %dx%d matrix: %w",
			len(d.Values), d.Rows, d.Cols, ErrMalformedResponse)
	}
	return nil
}
