package wire

import (
	"fmt"
	"math"

	"github.com/vantadb/vanta-go/v1/field"
)

// ToField reconstructs a typed column from its binary-channel wire shape.
// It is the exact inverse of FromField: the concrete variant is chosen by the
// declared type tag, int buckets are narrowed back to their declared widths,
// and flat vector buffers are resliced into dim-wide rows. A tag outside the
// closed set fails with ErrUnsupportedFieldType; structural violations fail
// with ErrMalformedResponse.
func ToField(fd *FieldData) (field.Field, error) {
	if fd.Vectors != nil && !fd.Type.IsVector() {
		return nil, fmt.Errorf("wire: field %q carries a vector payload but scalar type %s: %w",
			fd.FieldName, fd.Type, field.ErrMalformedResponse)
	}
	if fd.Scalars != nil && fd.Type.IsVector() {
		return nil, fmt.Errorf("wire: field %q carries a scalar payload but vector type %s: %w",
			fd.FieldName, fd.Type, field.ErrMalformedResponse)
	}
	switch fd.Type {
	case field.DataTypeBool:
		return field.NewBool(fd.FieldName, scalars(fd).Bool)
	case field.DataTypeInt8:
		values, err := narrowInts[int8](fd, math.MinInt8, math.MaxInt8)
		if err != nil {
			return nil, err
		}
		return field.NewInt8(fd.FieldName, values)
	case field.DataTypeInt16:
		values, err := narrowInts[int16](fd, math.MinInt16, math.MaxInt16)
		if err != nil {
			return nil, err
		}
		return field.NewInt16(fd.FieldName, values)
	case field.DataTypeInt32:
		return field.NewInt32(fd.FieldName, scalars(fd).Int)
	case field.DataTypeInt64:
		return field.NewInt64(fd.FieldName, scalars(fd).Long)
	case field.DataTypeFloat:
		return field.NewFloat(fd.FieldName, scalars(fd).Float)
	case field.DataTypeDouble:
		return field.NewDouble(fd.FieldName, scalars(fd).Double)
	case field.DataTypeVarChar:
		return field.NewVarChar(fd.FieldName, scalars(fd).Str)
	case field.DataTypeString:
		return field.NewString(fd.FieldName, scalars(fd).Str)
	case field.DataTypeJSON:
		if fd.IsDynamic {
			return field.NewDynamic(scalars(fd).JSON)
		}
		return field.NewJSON(fd.FieldName, scalars(fd).JSON)
	case field.DataTypeFloatVector:
		rows, dim, err := unflattenFloats(fd)
		if err != nil {
			return nil, err
		}
		vf, err := field.NewFloatVector(fd.FieldName, rows)
		if err != nil {
			return nil, err
		}
		if vf.Dim() != dim {
			return nil, fmt.Errorf("wire: field %q decoded dim %d, declared %d: %w",
				fd.FieldName, vf.Dim(), dim, field.ErrMalformedResponse)
		}
		return vf, nil
	case field.DataTypeBinaryVector:
		rows, dim, err := unflattenBytes(fd)
		if err != nil {
			return nil, err
		}
		return field.NewBinaryVector(fd.FieldName, dim, rows)
	default:
		return nil, fmt.Errorf("wire: field %q has unknown type tag %d: %w",
			fd.FieldName, fd.Type, field.ErrUnsupportedFieldType)
	}
}

// scalars returns the scalar payload, substituting an empty one so missing
// payloads fail uniformly inside the field constructors.
func scalars(fd *FieldData) *ScalarPayload {
	if fd.Scalars == nil {
		return &ScalarPayload{}
	}
	return fd.Scalars
}

// narrowInts narrows the shared int bucket back to the declared width. A
// value outside the declared range means the response disagrees with its own
// type tag, which is malformed rather than coercible.
func narrowInts[T int8 | int16](fd *FieldData, lo, hi int32) ([]T, error) {
	in := scalars(fd).Int
	out := make([]T, len(in))
	for i, v := range in {
		if v < lo || v > hi {
			return nil, fmt.Errorf("wire: field %q value %d overflows %s: %w",
				fd.FieldName, v, fd.Type, field.ErrMalformedResponse)
		}
		out[i] = T(v)
	}
	return out, nil
}

// unflattenFloats reslices a flat row-major float buffer into dim-wide rows,
// computing the row count as len/dim and rejecting a buffer the dimension
// does not evenly divide.
func unflattenFloats(fd *FieldData) ([][]float32, int, error) {
	vp := fd.Vectors
	if vp == nil {
		return nil, 0, fmt.Errorf("wire: field %q missing vector payload: %w",
			fd.FieldName, field.ErrMalformedResponse)
	}
	dim := int(vp.Dim)
	if dim <= 0 {
		return nil, 0, fmt.Errorf("wire: field %q has non-positive dim %d: %w",
			fd.FieldName, dim, field.ErrMalformedResponse)
	}
	if len(vp.Float)%dim != 0 {
		return nil, 0, fmt.Errorf("wire: field %q flat length %d not divisible by dim %d: %w",
			fd.FieldName, len(vp.Float), dim, field.ErrMalformedResponse)
	}
	n := len(vp.Float) / dim
	rows := make([][]float32, n)
	for i := 0; i < n; i++ {
		rows[i] = vp.Float[i*dim : (i+1)*dim]
	}
	return rows, dim, nil
}

// unflattenBytes reslices a flat packed buffer into ⌈dim/8⌉-byte rows.
func unflattenBytes(fd *FieldData) ([][]byte, int, error) {
	vp := fd.Vectors
	if vp == nil {
		return nil, 0, fmt.Errorf("wire: field %q missing vector payload: %w",
			fd.FieldName, field.ErrMalformedResponse)
	}
	dim := int(vp.Dim)
	if dim <= 0 {
		return nil, 0, fmt.Errorf("wire: field %q has non-positive dim %d: %w",
			fd.FieldName, dim, field.ErrMalformedResponse)
	}
	rowBytes := (dim + 7) / 8
	if len(vp.Binary)%rowBytes != 0 {
		return nil, 0, fmt.Errorf("wire: field %q flat length %d not divisible by row width %d: %w",
			fd.FieldName, len(vp.Binary), rowBytes, field.ErrMalformedResponse)
	}
	n := len(vp.Binary) / rowBytes
	rows := make([][]byte, n)
	for i := 0; i < n; i++ {
		rows[i] = vp.Binary[i*rowBytes : (i+1)*rowBytes]
	}
	return rows, dim, nil
}

// ToIDs decodes an identifier list.
func ToIDs(d *IDsData) field.IDs {
	if d == nil {
		return field.IDs{}
	}
	if len(d.Str) > 0 {
		return field.NewStringIDs(d.Str...)
	}
	return field.NewInt64IDs(d.Int...)
}

// DecodeSearchResults reconstructs a typed search result from the wire
// aggregate, enforcing the parallel-array invariants before returning it.
func DecodeSearchResults(d *SearchResultsData) (*field.SearchResult, error) {
	if d == nil {
		return nil, fmt.Errorf("wire: missing search results: %w", field.ErrMalformedResponse)
	}
	fields := make([]field.Field, 0, len(d.Fields))
	for _, fd := range d.Fields {
		f, err := ToField(fd)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	result := &field.SearchResult{
		CollectionName: d.Collection,
		Results: field.ResultData{
			Fields: fields,
			IDs:    ToIDs(d.IDs),
			Scores: d.Scores,
			TopK:   d.TopK,
			TopKs:  d.TopKs,
		},
	}
	if err := result.Results.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeDistanceResults reconstructs the distance matrix from its wire shape.
func DecodeDistanceResults(d *DistanceResultsData) (*field.DistanceResult, error) {
	if d == nil {
		return nil, fmt.Errorf("wire: missing distance results: %w", field.ErrMalformedResponse)
	}
	result := &field.DistanceResult{
		Rows:   int(d.Rows),
		Cols:   int(d.Cols),
		Values: d.Values,
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
