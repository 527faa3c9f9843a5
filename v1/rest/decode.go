package rest

import (
	"encoding/json"
	"fmt"

	"github.com/vantadb/vanta-go/v1/field"
)

// ToField reconstructs a typed column from its JSON-channel wire shape. The
// channel delivers each field pre-shaped as arrays, so decoding is type-tag
// dispatch plus unmarshaling; no reslicing happens here. An unknown type name
// fails with ErrUnsupportedFieldType; data that does not parse as the
// declared element type fails with ErrMalformedResponse.
func ToField(fj *FieldJSON) (field.Field, error) {
	switch field.DataTypeFromString(fj.Type) {
	case field.DataTypeBool:
		return decodeScalar(fj, field.NewBool)
	case field.DataTypeInt8:
		return decodeScalar(fj, field.NewInt8)
	case field.DataTypeInt16:
		return decodeScalar(fj, field.NewInt16)
	case field.DataTypeInt32:
		return decodeScalar(fj, field.NewInt32)
	case field.DataTypeInt64:
		return decodeScalar(fj, field.NewInt64)
	case field.DataTypeFloat:
		return decodeScalar(fj, field.NewFloat)
	case field.DataTypeDouble:
		return decodeScalar(fj, field.NewDouble)
	case field.DataTypeVarChar:
		return decodeScalar(fj, field.NewVarChar)
	case field.DataTypeString:
		return decodeScalar(fj, field.NewString)
	case field.DataTypeJSON:
		var rows []json.RawMessage
		if err := unmarshalData(fj, &rows); err != nil {
			return nil, err
		}
		docs := make([][]byte, len(rows))
		for i, r := range rows {
			docs[i] = []byte(r)
		}
		if fj.IsDynamic {
			return field.NewDynamic(docs)
		}
		return field.NewJSON(fj.FieldName, docs)
	case field.DataTypeFloatVector:
		var rows [][]float32
		if err := unmarshalData(fj, &rows); err != nil {
			return nil, err
		}
		vf, err := field.NewFloatVector(fj.FieldName, rows)
		if err != nil {
			return nil, err
		}
		if fj.Dim != 0 && int64(vf.Dim()) != fj.Dim {
			return nil, fmt.Errorf("rest: field %q rows have dim %d, declared %d: %w",
				fj.FieldName, vf.Dim(), fj.Dim, field.ErrMalformedResponse)
		}
		return vf, nil
	case field.DataTypeBinaryVector:
		var rows [][]byte
		if err := unmarshalData(fj, &rows); err != nil {
			return nil, err
		}
		if fj.Dim <= 0 {
			return nil, fmt.Errorf("rest: field %q missing dim: %w",
				fj.FieldName, field.ErrMalformedResponse)
		}
		return field.NewBinaryVector(fj.FieldName, int(fj.Dim), rows)
	default:
		return nil, fmt.Errorf("rest: field %q has unknown type %q: %w",
			fj.FieldName, fj.Type, field.ErrUnsupportedFieldType)
	}
}

// decodeScalar unmarshals a plain array and hands it to the variant's
// constructor.
func decodeScalar[T any, F field.Field](fj *FieldJSON, construct func(string, []T) (F, error)) (field.Field, error) {
	var values []T
	if err := unmarshalData(fj, &values); err != nil {
		return nil, err
	}
	return construct(fj.FieldName, values)
}

func unmarshalData(fj *FieldJSON, into any) error {
	if err := json.Unmarshal(fj.Data, into); err != nil {
		return fmt.Errorf("rest: field %q data does not match type %s: %w (%v)",
			fj.FieldName, fj.Type, field.ErrMalformedResponse, err)
	}
	return nil
}

// DecodeSearchResults reconstructs a typed search result from the JSON
// payload, enforcing the same parallel-array invariants as the binary
// channel.
func DecodeSearchResults(d *SearchResultsJSON) (*field.SearchResult, error) {
	if d == nil {
		return nil, fmt.Errorf("rest: missing search results: %w", field.ErrMalformedResponse)
	}
	fields := make([]field.Field, 0, len(d.FieldsData))
	for _, fj := range d.FieldsData {
		f, err := ToField(fj)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	ids, err := field.NewIDs(d.IDs)
	if err != nil {
		return nil, err
	}
	result := &field.SearchResult{
		CollectionName: d.CollectionName,
		Results: field.ResultData{
			Fields: fields,
			IDs:    ids,
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

// DecodeDistanceResults reconstructs the distance matrix from the JSON
// payload.
func DecodeDistanceResults(d *DistanceResultsJSON) (*field.DistanceResult, error) {
	if d == nil {
		return nil, fmt.Errorf("rest: missing distance results: %w", field.ErrMalformedResponse)
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
