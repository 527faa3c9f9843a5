package field

import "fmt"

// MetricType names the distance function used by similarity operations.
type MetricType string

const (
	MetricL2      MetricType = "L2"
	MetricIP      MetricType = "IP"
	MetricCosine  MetricType = "COSINE"
	MetricHamming MetricType = "HAMMING"
	MetricJaccard MetricType = "JACCARD"
)

// InsertRequest is the channel-agnostic insert envelope: a target collection,
// an optional partition and a batch of columns with equal row counts. Both
// wire channels encode it without further interpretation.
type InsertRequest struct {
	// Collection is the target collection. Required.
	Collection string

	// Partition optionally narrows the insert to one partition.
	Partition string

	// Fields are the columns of the batch. All must have the same row count.
	Fields []Field

	// Consistency is the write consistency tag carried on the envelope.
	Consistency ConsistencyLevel
}

// Validate checks the envelope invariants. A violation aborts the operation
// before any encoding is attempted.
func (r *InsertRequest) Validate() error {
	if r.Collection == "" {
		return fmt.Errorf("insert: collection name cannot be empty: %w", ErrSchemaMismatch)
	}
	if len(r.Fields) == 0 {
		return fmt.Errorf("insert: at least one field is required: %w", ErrSchemaMismatch)
	}
	rows := r.Fields[0].RowCount()
	for _, f := range r.Fields[1:] {
		if f.RowCount() != rows {
			return fmt.Errorf("insert: field %q has %d rows, field %q has %d: %w",
				r.Fields[0].Name(), rows, f.Name(), f.RowCount(), ErrSchemaMismatch)
		}
	}
	return nil
}

// RowCount returns the batch row count. Call Validate first.
func (r *InsertRequest) RowCount() int {
	if len(r.Fields) == 0 {
		return 0
	}
	return r.Fields[0].RowCount()
}

// SearchRequest is the channel-agnostic similarity-search envelope. Query
// vectors are a VectorInput in the float or binary shape; the id shape is
// rejected since search always sends query vectors inline.
type SearchRequest struct {
	// Collection is the target collection. Required.
	Collection string

	// Partitions optionally narrows the search.
	Partitions []string

	// VectorField is the vector column searched against.
	VectorField string

	// Vectors carries the query vectors (float or binary shape).
	Vectors *VectorInput

	// TopK is the requested hit count per query.
	TopK int

	// Metric selects the distance function.
	Metric MetricType

	// Expr is an optional boolean filter expression evaluated server-side.
	Expr string

	// OutputFields are the columns to return with each hit.
	OutputFields []string

	// Consistency is the read consistency tag carried on the envelope.
	Consistency ConsistencyLevel
}

// Validate checks the envelope invariants.
func (r *SearchRequest) Validate() error {
	if r.Collection == "" {
		return fmt.Errorf("search: collection name cannot be empty: %w", ErrSchemaMismatch)
	}
	if r.VectorField == "" {
		return fmt.Errorf("search: vector field name cannot be empty: %w", ErrSchemaMismatch)
	}
	if r.TopK <= 0 {
		return fmt.Errorf("search: topK must be positive, got %d: %w", r.TopK, ErrSchemaMismatch)
	}
	if r.Vectors == nil {
		return fmt.Errorf("search: query vectors are required: %w", ErrSchemaMismatch)
	}
	if r.Vectors.Kind() == IDVectorsKind {
		return fmt.Errorf("search: query vectors must be sent inline, not by id: %w", ErrSchemaMismatch)
	}
	return nil
}

// DeleteRequest is the channel-agnostic delete envelope: rows matching a
// boolean filter expression are removed from a collection.
type DeleteRequest struct {
	// Collection is the target collection. Required.
	Collection string

	// Partition optionally narrows the delete to one partition.
	Partition string

	// Expr is the boolean filter expression selecting the rows. Required.
	Expr string

	// Consistency is the write consistency tag carried on the envelope.
	Consistency ConsistencyLevel
}

// Validate checks the envelope invariants.
func (r *DeleteRequest) Validate() error {
	if r.Collection == "" {
		return fmt.Errorf("delete: collection name cannot be empty: %w", ErrSchemaMismatch)
	}
	if r.Expr == "" {
		return fmt.Errorf("delete: filter expression cannot be empty: %w", ErrSchemaMismatch)
	}
	return nil
}

// DistanceRequest is the channel-agnostic distance-calculation envelope: two
// vector inputs, each in any of the three shapes, and a metric.
type DistanceRequest struct {
	// Left and Right are the two operand sets. Required.
	Left  *VectorInput
	Right *VectorInput

	// Metric selects the distance function.
	Metric MetricType
}

// Validate checks the envelope invariants.
func (r *DistanceRequest) Validate() error {
	if r.Left == nil || r.Right == nil {
		return fmt.Errorf("distance: both operand vector sets are required: %w", ErrSchemaMismatch)
	}
	if r.Metric == "" {
		return fmt.Errorf("distance: metric is required: %w", ErrSchemaMismatch)
	}
	return nil
}
