package wire

import (
	"fmt"

	"github.com/vantadb/vanta-go/v1/field"
)

// FromField encodes a typed column into its binary-channel wire shape. The
// dispatch over the closed variant set is exhaustive; any type outside of it
// fails with ErrUnsupportedFieldType. Encoding is a pure function of the
// field: the same input always produces identical output.
func FromField(f field.Field) (*FieldData, error) {
	fd := &FieldData{
		FieldName: f.Name(),
		Type:      f.Type(),
		IsDynamic: f.IsDynamic(),
	}

	switch col := f.(type) {
	case *field.BoolField:
		fd.Scalars = &ScalarPayload{Bool: col.Values()}
	case *field.Int8Field:
		fd.Scalars = &ScalarPayload{Int: widenInts(col.Values())}
	case *field.Int16Field:
		fd.Scalars = &ScalarPayload{Int: widenInts(col.Values())}
	case *field.Int32Field:
		fd.Scalars = &ScalarPayload{Int: col.Values()}
	case *field.Int64Field:
		fd.Scalars = &ScalarPayload{Long: col.Values()}
	case *field.FloatField:
		fd.Scalars = &ScalarPayload{Float: col.Values()}
	case *field.DoubleField:
		fd.Scalars = &ScalarPayload{Double: col.Values()}
	case *field.VarCharField:
		fd.Scalars = &ScalarPayload{Str: col.Values()}
	case *field.StringField:
		fd.Scalars = &ScalarPayload{Str: col.Values()}
	case *field.JSONField:
		fd.Scalars = &ScalarPayload{JSON: col.Values()}
	case *field.FloatVectorField:
		flat, err := flattenFloatRows(col.Name(), col.Rows(), col.Dim())
		if err != nil {
			return nil, err
		}
		fd.Vectors = &VectorPayload{Dim: int64(col.Dim()), Float: flat}
	case *field.BinaryVectorField:
		fd.Vectors = &VectorPayload{
			Dim:    int64(col.Dim()),
			Binary: flattenByteRows(col.Rows(), col.RowBytes()),
		}
	default:
		return nil, fmt.Errorf("wire: cannot encode %T: %w", f, field.ErrUnsupportedFieldType)
	}
	return fd, nil
}

// widenInts widens int8/int16 values into the shared int bucket.
func widenInts[T int8 | int16](values []T) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}

// flattenFloatRows concatenates dim-wide rows into one row-major buffer.
// Each row is re-checked against dim even though construction already
// validated it, so a field built through unexported means can never leak a
// ragged buffer onto the wire.
func flattenFloatRows(name string, rows [][]float32, dim int) ([]float32, error) {
	flat := make([]float32, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("wire: field %q row %d has dim %d, want %d: %w",
				name, i, len(row), dim, field.ErrSchemaMismatch)
		}
		flat = append(flat, row...)
	}
	return flat, nil
}

// flattenByteRows concatenates fixed-width packed rows into one buffer.
func flattenByteRows(rows [][]byte, rowBytes int) []byte {
	flat := make([]byte, 0, len(rows)*rowBytes)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}

// FromIDs encodes an identifier list.
func FromIDs(ids field.IDs) *IDsData {
	if ids.IsStrings() {
		return &IDsData{Str: ids.Strings()}
	}
	return &IDsData{Int: ids.Int64s()}
}

// FromVectors encodes the vector-input union. The dispatch is purely on the
// active shape; there is no coercion between shapes.
func FromVectors(v *field.VectorInput) (*VectorsData, error) {
	switch v.Kind() {
	case field.FloatVectorsKind:
		flat, err := flattenFloatRows("vectors", v.FloatRows(), v.Dim())
		if err != nil {
			return nil, err
		}
		return &VectorsData{Dim: int64(v.Dim()), Float: flat}, nil
	case field.BinaryVectorsKind:
		b := v.Binary()
		return &VectorsData{
			Dim:    int64(v.Dim()),
			Binary: flattenByteRows(b.Rows(), b.RowBytes()),
		}, nil
	case field.IDVectorsKind:
		return &VectorsData{
			Dim: int64(v.Dim()),
			IDRef: &VectorIDRef{
				Collection: v.Collection(),
				FieldName:  v.FieldName(),
				Partitions: v.Partitions(),
				IDs:        FromIDs(v.IDs()),
			},
		}, nil
	default:
		return nil, fmt.Errorf("wire: vector input has no active shape: %w", field.ErrSchemaMismatch)
	}
}

// EncodeInsert validates and encodes an insert request envelope.
func EncodeInsert(r *field.InsertRequest) (*InsertRequestData, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	fields := make([]*FieldData, len(r.Fields))
	for i, f := range r.Fields {
		fd, err := FromField(f)
		if err != nil {
			return nil, err
		}
		fields[i] = fd
	}
	return &InsertRequestData{
		Collection:  r.Collection,
		Partition:   r.Partition,
		Fields:      fields,
		NumRows:     uint64(r.RowCount()),
		Consistency: int32(r.Consistency),
	}, nil
}

// EncodeSearch validates and encodes a search request envelope.
func EncodeSearch(r *field.SearchRequest) (*SearchRequestData, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	vectors, err := FromVectors(r.Vectors)
	if err != nil {
		return nil, err
	}
	return &SearchRequestData{
		Collection:   r.Collection,
		Partitions:   r.Partitions,
		VectorField:  r.VectorField,
		Vectors:      vectors,
		TopK:         int64(r.TopK),
		Metric:       string(r.Metric),
		Expr:         r.Expr,
		OutputFields: r.OutputFields,
		Consistency:  int32(r.Consistency),
	}, nil
}

// EncodeDistance validates and encodes a distance request envelope.
func EncodeDistance(r *field.DistanceRequest) (*DistanceRequestData, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	left, err := FromVectors(r.Left)
	if err != nil {
		return nil, err
	}
	right, err := FromVectors(r.Right)
	if err != nil {
		return nil, err
	}
	return &DistanceRequestData{Left: left, Right: right, Metric: string(r.Metric)}, nil
}
