package rest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/vantadb/vanta-go/v1/field"
)

func TestFromFieldScalarJSON(t *testing.T) {
	col, err := field.NewInt64("book_id", []int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	fj, err := FromField(col)
	if err != nil {
		t.Fatalf("FromField returned error: %v", err)
	}
	if fj.FieldName != "book_id" || fj.Type != "Int64" {
		t.Errorf("field header wrong: %+v", fj)
	}
	if string(fj.Data) != "[1,2,3]" {
		t.Errorf("data = %s, want [1,2,3]", fj.Data)
	}
}

func TestFromFieldVectorJSONCarriesDim(t *testing.T) {
	vec, err := field.NewFloatVector("book_intro", [][]float32{{0.5, 0.25}, {1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	fj, err := FromField(vec)
	if err != nil {
		t.Fatalf("FromField returned error: %v", err)
	}
	if fj.Type != "FloatVector" || fj.Dim != 2 {
		t.Errorf("vector header wrong: %+v", fj)
	}
	if string(fj.Data) != "[[0.5,0.25],[1,2]]" {
		t.Errorf("data = %s", fj.Data)
	}
}

func TestFromFieldJSONColumnEmbedsObjects(t *testing.T) {
	col, err := field.NewJSON("meta", [][]byte{[]byte(`{"a":1}`), []byte(`{"b":2}`)})
	if err != nil {
		t.Fatal(err)
	}
	fj, err := FromField(col)
	if err != nil {
		t.Fatalf("FromField returned error: %v", err)
	}
	if string(fj.Data) != `[{"a":1},{"b":2}]` {
		t.Errorf("JSON column not embedded as objects: %s", fj.Data)
	}
}

func TestToFieldRoundTrip(t *testing.T) {
	build := []func() (field.Field, error){
		func() (field.Field, error) { return field.NewBool("b", []bool{true, false}) },
		func() (field.Field, error) { return field.NewInt8("i8", []int8{-5, 5}) },
		func() (field.Field, error) { return field.NewInt64("i64", []int64{1, 2}) },
		func() (field.Field, error) { return field.NewDouble("d", []float64{0.25, 0.75}) },
		func() (field.Field, error) { return field.NewVarChar("vc", []string{"x", "y"}) },
		func() (field.Field, error) { return field.NewDynamic([][]byte{[]byte(`{"x":1}`), []byte(`{}`)}) },
		func() (field.Field, error) {
			return field.NewFloatVector("fv", [][]float32{{0.5, 0.25}, {1, 2}})
		},
		func() (field.Field, error) { return field.NewBinaryVector("bv", 8, [][]byte{{0x01}, {0xFF}}) },
	}
	for _, mk := range build {
		orig, err := mk()
		if err != nil {
			t.Fatal(err)
		}
		fj, err := FromField(orig)
		if err != nil {
			t.Fatalf("FromField(%q) returned error: %v", orig.Name(), err)
		}
		back, err := ToField(fj)
		if err != nil {
			t.Fatalf("ToField(%q) returned error: %v", orig.Name(), err)
		}
		if back.Name() != orig.Name() || back.Type() != orig.Type() ||
			back.RowCount() != orig.RowCount() || back.IsDynamic() != orig.IsDynamic() {
			t.Errorf("round trip changed field %q: name=%q type=%v rows=%d dynamic=%v",
				orig.Name(), back.Name(), back.Type(), back.RowCount(), back.IsDynamic())
		}
	}
}

func TestToFieldRejectsMismatchedData(t *testing.T) {
	fj := &FieldJSON{FieldName: "i64", Type: "Int64", Data: json.RawMessage(`["a","b"]`)}
	if _, err := ToField(fj); !errors.Is(err, field.ErrMalformedResponse) {
		t.Errorf("strings in int column: expected malformed response, got %v", err)
	}
}

func TestToFieldRejectsUnknownTypeName(t *testing.T) {
	fj := &FieldJSON{FieldName: "x", Type: "Quaternion", Data: json.RawMessage(`[]`)}
	if _, err := ToField(fj); !errors.Is(err, field.ErrUnsupportedFieldType) {
		t.Errorf("unknown type name: expected unsupported field type, got %v", err)
	}
}

func TestToFieldRejectsDimDisagreement(t *testing.T) {
	fj := &FieldJSON{
		FieldName: "fv",
		Type:      "FloatVector",
		Dim:       4,
		Data:      json.RawMessage(`[[0.1,0.2],[0.3,0.4]]`),
	}
	if _, err := ToField(fj); !errors.Is(err, field.ErrMalformedResponse) {
		t.Errorf("declared dim 4 with 2-wide rows: expected malformed response, got %v", err)
	}
}

func TestToFieldBinaryVectorRequiresDim(t *testing.T) {
	fj := &FieldJSON{FieldName: "bv", Type: "BinaryVector", Data: json.RawMessage(`["AQ=="]`)}
	if _, err := ToField(fj); !errors.Is(err, field.ErrMalformedResponse) {
		t.Errorf("missing dim: expected malformed response, got %v", err)
	}
}

func TestFromVectorsIDShape(t *testing.T) {
	iv, err := field.NewIDVectors("books", "book_intro", field.NewStringIDs("a", "b"), "p0")
	if err != nil {
		t.Fatal(err)
	}
	vj, err := FromVectors(iv)
	if err != nil {
		t.Fatalf("FromVectors returned error: %v", err)
	}
	if vj.CollectionName != "books" || vj.FieldName != "book_intro" {
		t.Errorf("id shape reference wrong: %+v", vj)
	}
	if len(vj.IDArray) != 2 || vj.Vectors != nil || vj.BinaryVectors != nil {
		t.Errorf("id shape payload wrong: %+v", vj)
	}
}

func TestDecodeSearchResultsJSON(t *testing.T) {
	d := &SearchResultsJSON{
		CollectionName: "books",
		IDs:            []any{float64(10), float64(11), float64(20)},
		Scores:         []float32{0.9, 0.8, 0.95},
		TopK:           2,
		TopKs:          []int64{2, 1},
	}
	res, err := DecodeSearchResults(d)
	if err != nil {
		t.Fatalf("DecodeSearchResults returned error: %v", err)
	}
	if res.Results.IDs.IsStrings() {
		t.Error("integral JSON numbers should decode as integer ids")
	}
	q0, err := res.Results.Query(0)
	if err != nil {
		t.Fatal(err)
	}
	if q0.IDs.Len() != 2 || q0.IDs.Get(0) != int64(10) {
		t.Errorf("first query ids wrong: %+v", q0.IDs)
	}
}

func TestDecodeSearchResultsJSONRejectsMixedIDs(t *testing.T) {
	d := &SearchResultsJSON{
		IDs:    []any{float64(10), "x"},
		Scores: []float32{0.9, 0.8},
		TopKs:  []int64{2},
	}
	if _, err := DecodeSearchResults(d); !errors.Is(err, field.ErrMixedIDTypes) {
		t.Errorf("mixed ids: expected mixed id types error, got %v", err)
	}
}
