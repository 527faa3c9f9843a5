package wire

import "github.com/vantadb/vanta-go/v1/field"

// FieldData is the binary-channel wire shape of one field: identity, type tag
// and exactly one payload. Scalar columns travel as flat typed arrays; vector
// columns travel as one contiguous row-major buffer with the dimension as
// sidecar metadata.
type FieldData struct {
	FieldName string
	Type      field.DataType
	IsDynamic bool
	Scalars   *ScalarPayload
	Vectors   *VectorPayload
}

// ScalarPayload carries one bucket per scalar kind. Int8, Int16 and Int32
// columns share the Int bucket; the field's type tag narrows them back on
// decode.
type ScalarPayload struct {
	Bool   []bool
	Int    []int32
	Long   []int64
	Float  []float32
	Double []float64
	Str    []string
	JSON   [][]byte
}

// VectorPayload carries a flattened vector column. For float vectors Float
// holds rows*dim values row-major; for binary vectors Binary holds
// rows*⌈dim/8⌉ packed bytes row-major. Dim is the declared dimension
// (element count or bit width).
type VectorPayload struct {
	Dim    int64
	Float  []float32
	Binary []byte
}

// IDsData is the wire shape of an identifier list: exactly one of the two
// arrays is populated.
type IDsData struct {
	Int []int64
	Str []string
}

// VectorIDRef asks the server to resolve vectors by identifier instead of
// receiving them inline.
type VectorIDRef struct {
	Collection string
	FieldName  string
	Partitions []string
	IDs        *IDsData
}

// VectorsData is the wire shape of the three-case vector-input union.
// Exactly one of Float+Dim, Binary+Dim or IDRef is populated, mirroring the
// active shape of the encoded field.VectorInput.
type VectorsData struct {
	Dim    int64
	Float  []float32
	Binary []byte
	IDRef  *VectorIDRef
}

// InsertRequestData is the binary-channel insert envelope.
type InsertRequestData struct {
	Collection  string
	Partition   string
	Fields      []*FieldData
	NumRows     uint64
	Consistency int32
}

// SearchRequestData is the binary-channel search envelope.
type SearchRequestData struct {
	Collection   string
	Partitions   []string
	VectorField  string
	Vectors      *VectorsData
	TopK         int64
	Metric       string
	Expr         string
	OutputFields []string
	Consistency  int32
}

// DistanceRequestData is the binary-channel distance envelope.
type DistanceRequestData struct {
	Left   *VectorsData
	Right  *VectorsData
	Metric string
}

// Status is the (errorCode, message) pair every response envelope opens with.
// Code zero means success; anything else is surfaced to the caller unchanged.
type Status struct {
	Code   int32
	Reason string
}

// SearchResultsData is the binary-channel search result aggregate. The
// decoder reslices each vector field's flat buffer back into dim-wide rows.
type SearchResultsData struct {
	Collection string
	Fields     []*FieldData
	IDs        *IDsData
	Scores     []float32
	TopK       int64
	TopKs      []int64
}

// DistanceResultsData is the binary-channel distance result: a flat row-major
// matrix of distances.
type DistanceResultsData struct {
	Rows   int64
	Cols   int64
	Values []float32
}

// DeleteRequestData is the binary-channel delete envelope: rows to remove
// are selected by a server-side filter expression.
type DeleteRequestData struct {
	Collection  string
	Partition   string
	Expr        string
	Consistency int32
}

// DeleteResponseData is the binary-channel delete response envelope.
type DeleteResponseData struct {
	Status    *Status
	DeleteCnt int64
}

// FlushRequestData is the binary-channel flush envelope.
type FlushRequestData struct {
	Collections []string
}

// FlushResponseData is the binary-channel flush response envelope.
type FlushResponseData struct {
	Status *Status
}

// InsertResponseData is the binary-channel insert response envelope.
type InsertResponseData struct {
	Status    *Status
	IDs       *IDsData
	InsertCnt int64
}

// SearchResponseData is the binary-channel search response envelope.
type SearchResponseData struct {
	Status  *Status
	Results *SearchResultsData
}

// DistanceResponseData is the binary-channel distance response envelope.
type DistanceResponseData struct {
	Status  *Status
	Results *DistanceResultsData
}
