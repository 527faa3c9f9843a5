package field

import "fmt"

// VectorsKind identifies the active shape of a VectorInput.
type VectorsKind int

const (
	// FloatVectorsKind carries inline dense float rows.
	FloatVectorsKind VectorsKind = iota + 1

	// BinaryVectorsKind carries an inline bit-packed vector column.
	BinaryVectorsKind

	// IDVectorsKind references stored vectors by identifier and asks the
	// server to resolve them instead of sending them inline.
	IDVectorsKind
)

// VectorInput is the tagged three-case union consumed by similarity and
// distance operations. Exactly one shape is populated; the three factory
// functions are the only way to construct one, so mutual exclusivity is a
// structural guarantee rather than a runtime convention. The active shape
// alone determines the wire encoding.
type VectorInput struct {
	kind VectorsKind
	dim  int

	floatRows [][]float32
	binary    *BinaryVectorField

	collection string
	fieldName  string
	partitions []string
	ids        IDs
}

// NewFloatVectors creates a float-vector input. All rows must share the first
// row's dimension; a mismatched row fails here, not at encode time.
func NewFloatVectors(rows [][]float32) (*VectorInput, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("vectors: rows cannot be empty: %w", ErrSchemaMismatch)
	}
	dim := len(rows[0])
	if dim == 0 {
		return nil, fmt.Errorf("vectors: zero-dimension row: %w", ErrSchemaMismatch)
	}
	copied := make([][]float32, len(rows))
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("vectors: row %d has dim %d, want %d: %w",
				i, len(row), dim, ErrSchemaMismatch)
		}
		copied[i] = append([]float32(nil), row...)
	}
	return &VectorInput{kind: FloatVectorsKind, dim: dim, floatRows: copied}, nil
}

// NewBinaryVectors creates a binary-vector input. The dimension comes from
// the column's declared metadata, not from measuring row byte lengths.
func NewBinaryVectors(f *BinaryVectorField) (*VectorInput, error) {
	if f == nil {
		return nil, fmt.Errorf("vectors: binary field cannot be nil: %w", ErrSchemaMismatch)
	}
	return &VectorInput{kind: BinaryVectorsKind, dim: f.Dim(), binary: f}, nil
}

// NewIDVectors creates an identifier-reference input: collection plus vector
// field plus id list, with an optional partition filter. Dim is the id-list
// length and is used only for row-count bookkeeping, never as a vector width.
func NewIDVectors(collection, fieldName string, ids IDs, partitions ...string) (*VectorInput, error) {
	if collection == "" {
		return nil, fmt.Errorf("vectors: collection name cannot be empty: %w", ErrSchemaMismatch)
	}
	if fieldName == "" {
		return nil, fmt.Errorf("vectors: field name cannot be empty: %w", ErrSchemaMismatch)
	}
	if ids.Len() == 0 {
		return nil, fmt.Errorf("vectors: id list cannot be empty: %w", ErrSchemaMismatch)
	}
	return &VectorInput{
		kind:       IDVectorsKind,
		dim:        ids.Len(),
		collection: collection,
		fieldName:  fieldName,
		partitions: append([]string(nil), partitions...),
		ids:        ids,
	}, nil
}

// Kind returns the active shape.
func (v *VectorInput) Kind() VectorsKind { return v.kind }

// Dim returns the shared row dimension, or the id count for the id shape.
func (v *VectorInput) Dim() int { return v.dim }

// RowCount returns the number of vectors the input resolves to.
func (v *VectorInput) RowCount() int {
	switch v.kind {
	case FloatVectorsKind:
		return len(v.floatRows)
	case BinaryVectorsKind:
		return v.binary.RowCount()
	default:
		return v.ids.Len()
	}
}

// FloatRows returns the dense rows for the float shape, nil otherwise.
func (v *VectorInput) FloatRows() [][]float32 { return v.floatRows }

// Binary returns the packed column for the binary shape, nil otherwise.
func (v *VectorInput) Binary() *BinaryVectorField { return v.binary }

// Collection returns the referenced collection for the id shape.
func (v *VectorInput) Collection() string { return v.collection }

// FieldName returns the referenced vector field for the id shape.
func (v *VectorInput) FieldName() string { return v.fieldName }

// Partitions returns the optional partition filter for the id shape.
func (v *VectorInput) Partitions() []string { return v.partitions }

// IDs returns the identifier list for the id shape.
func (v *VectorInput) IDs() IDs { return v.ids }
