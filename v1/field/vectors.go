package field

import "fmt"

// FloatVectorField is a column of dense float vectors. Every row has exactly
// Dim elements; the dimension is fixed by the first row at construction and a
// violating row is a hard error, never a silent truncation or pad.
type FloatVectorField struct {
	name string
	dim  int
	rows [][]float32
}

// NewFloatVector creates a dense vector column. The dimension is taken from
// the first row and every other row must match it.
func NewFloatVector(name string, rows [][]float32) (*FloatVectorField, error) {
	if name == "" {
		return nil, fmt.Errorf("field name cannot be empty: %w", ErrSchemaMismatch)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("field %q: rows cannot be empty: %w", name, ErrSchemaMismatch)
	}
	dim := len(rows[0])
	if dim == 0 {
		return nil, fmt.Errorf("field %q: zero-dimension vector: %w", name, ErrSchemaMismatch)
	}
	copied := make([][]float32, len(rows))
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("field %q: row %d has dim %d, want %d: %w",
				name, i, len(row), dim, ErrSchemaMismatch)
		}
		copied[i] = append([]float32(nil), row...)
	}
	return &FloatVectorField{name: name, dim: dim, rows: copied}, nil
}

func (f *FloatVectorField) Name() string    { return f.name }
func (f *FloatVectorField) Type() DataType  { return DataTypeFloatVector }
func (f *FloatVectorField) RowCount() int   { return len(f.rows) }
func (f *FloatVectorField) IsDynamic() bool { return false }

// Dim returns the element count shared by every row.
func (f *FloatVectorField) Dim() int { return f.dim }

// Rows returns the vector rows. The returned slices are owned by the field
// and must not be modified.
func (f *FloatVectorField) Rows() [][]float32 { return f.rows }

// BinaryVectorField is a column of bit-packed vectors. Dim is reported in
// bits; each row is exactly ⌈dim/8⌉ bytes.
type BinaryVectorField struct {
	name string
	dim  int
	rows [][]byte
}

// NewBinaryVector creates a bit-packed vector column. dim is the bit width of
// each row; each row must be exactly ⌈dim/8⌉ bytes long.
func NewBinaryVector(name string, dim int, rows [][]byte) (*BinaryVectorField, error) {
	if name == "" {
		return nil, fmt.Errorf("field name cannot be empty: %w", ErrSchemaMismatch)
	}
	if dim <= 0 {
		return nil, fmt.Errorf("field %q: dimension must be positive, got %d: %w", name, dim, ErrSchemaMismatch)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("field %q: rows cannot be empty: %w", name, ErrSchemaMismatch)
	}
	rowBytes := (dim + 7) / 8
	copied := make([][]byte, len(rows))
	for i, row := range rows {
		if len(row) != rowBytes {
			return nil, fmt.Errorf("field %q: row %d has %d bytes, want %d for dim %d: %w",
				name, i, len(row), rowBytes, dim, ErrSchemaMismatch)
		}
		copied[i] = append([]byte(nil), row...)
	}
	return &BinaryVectorField{name: name, dim: dim, rows: copied}, nil
}

func (f *BinaryVectorField) Name() string    { return f.name }
func (f *BinaryVectorField) Type() DataType  { return DataTypeBinaryVector }
func (f *BinaryVectorField) RowCount() int   { return len(f.rows) }
func (f *BinaryVectorField) IsDynamic() bool { return false }

// Dim returns the bit width shared by every row.
func (f *BinaryVectorField) Dim() int { return f.dim }

// RowBytes returns the byte length of each packed row, ⌈dim/8⌉.
func (f *BinaryVectorField) RowBytes() int { return (f.dim + 7) / 8 }

// Rows returns the packed rows. The returned slices are owned by the field
// and must not be modified.
func (f *BinaryVectorField) Rows() [][]byte { return f.rows }
