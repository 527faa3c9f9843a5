package rest

import (
	"encoding/json"
	"fmt"

	"github.com/vantadb/vanta-go/v1/field"
)

// FromField encodes a typed column into its JSON-channel wire shape: scalar
// columns as plain ordered arrays, float-vector columns as one array per row,
// binary-vector columns as base64-encoded row strings. The dispatch over the
// closed variant set is exhaustive.
func FromField(f field.Field) (*FieldJSON, error) {
	fj := &FieldJSON{
		FieldName: f.Name(),
		Type:      f.Type().String(),
		IsDynamic: f.IsDynamic(),
	}

	var (
		data any
		err  error
	)
	switch col := f.(type) {
	case *field.BoolField:
		data = col.Values()
	case *field.Int8Field:
		data = col.Values()
	case *field.Int16Field:
		data = col.Values()
	case *field.Int32Field:
		data = col.Values()
	case *field.Int64Field:
		data = col.Values()
	case *field.FloatField:
		data = col.Values()
	case *field.DoubleField:
		data = col.Values()
	case *field.VarCharField:
		data = col.Values()
	case *field.StringField:
		data = col.Values()
	case *field.JSONField:
		data = rawRows(col.Values())
	case *field.FloatVectorField:
		if err := checkRows(col.Name(), col.Rows(), col.Dim()); err != nil {
			return nil, err
		}
		fj.Dim = int64(col.Dim())
		data = col.Rows()
	case *field.BinaryVectorField:
		fj.Dim = int64(col.Dim())
		data = col.Rows()
	default:
		return nil, fmt.Errorf("rest: cannot encode %T: %w", f, field.ErrUnsupportedFieldType)
	}

	fj.Data, err = json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("rest: marshaling field %q: %w", f.Name(), err)
	}
	return fj, nil
}

// rawRows reinterprets stored JSON documents as raw messages so they embed
// as objects rather than base64 strings.
func rawRows(rows [][]byte) []json.RawMessage {
	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = json.RawMessage(r)
	}
	return out
}

// checkRows re-validates every row against the declared dimension at encode
// time, matching the binary channel's strictness.
func checkRows(name string, rows [][]float32, dim int) error {
	for i, row := range rows {
		if len(row) != dim {
			return fmt.Errorf("rest: field %q row %d has dim %d, want %d: %w",
				name, i, len(row), dim, field.ErrSchemaMismatch)
		}
	}
	return nil
}

// FromIDs encodes an identifier list as a plain JSON array.
func FromIDs(ids field.IDs) []any {
	out := make([]any, ids.Len())
	for i := range out {
		out[i] = ids.Get(i)
	}
	return out
}

// FromVectors encodes the vector-input union; the active shape alone decides
// which properties are populated.
func FromVectors(v *field.VectorInput) (*VectorsJSON, error) {
	switch v.Kind() {
	case field.FloatVectorsKind:
		if err := checkRows("vectors", v.FloatRows(), v.Dim()); err != nil {
			return nil, err
		}
		return &VectorsJSON{Dim: int64(v.Dim()), Vectors: v.FloatRows()}, nil
	case field.BinaryVectorsKind:
		return &VectorsJSON{Dim: int64(v.Dim()), BinaryVectors: v.Binary().Rows()}, nil
	case field.IDVectorsKind:
		return &VectorsJSON{
			IDArray:        FromIDs(v.IDs()),
			CollectionName: v.Collection(),
			FieldName:      v.FieldName(),
			PartitionNames: v.Partitions(),
		}, nil
	default:
		return nil, fmt.Errorf("rest: vector input has no active shape: %w", field.ErrSchemaMismatch)
	}
}

// EncodeInsert validates and encodes an insert request envelope.
func EncodeInsert(r *field.InsertRequest) (*InsertRequestJSON, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	fields := make([]*FieldJSON, len(r.Fields))
	for i, f := range r.Fields {
		fj, err := FromField(f)
		if err != nil {
			return nil, err
		}
		fields[i] = fj
	}
	return &InsertRequestJSON{
		CollectionName:   r.Collection,
		PartitionName:    r.Partition,
		FieldsData:       fields,
		NumRows:          r.RowCount(),
		ConsistencyLevel: r.Consistency.String(),
	}, nil
}

// EncodeSearch validates and encodes a search request envelope.
func EncodeSearch(r *field.SearchRequest) (*SearchRequestJSON, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	vectors, err := FromVectors(r.Vectors)
	if err != nil {
		return nil, err
	}
	return &SearchRequestJSON{
		CollectionName:   r.Collection,
		PartitionNames:   r.Partitions,
		VectorField:      r.VectorField,
		Vectors:          vectors,
		TopK:             int64(r.TopK),
		MetricType:       string(r.Metric),
		Expr:             r.Expr,
		OutputFields:     r.OutputFields,
		ConsistencyLevel: r.Consistency.String(),
	}, nil
}

// EncodeDistance validates and encodes a distance request envelope.
func EncodeDistance(r *field.DistanceRequest) (*DistanceRequestJSON, error) {
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
	return &DistanceRequestJSON{OpLeft: left, OpRight: right, MetricType: string(r.Metric)}, nil
}
