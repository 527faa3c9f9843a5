package rest

import "encoding/json"

// FieldJSON is the JSON-channel wire shape of one field: identity and type
// tag as named properties, values as a plain array (scalars) or an
// array-of-arrays (vectors).
type FieldJSON struct {
	FieldName string          `json:"field_name"`
	Type      string          `json:"type"`
	IsDynamic bool            `json:"is_dynamic,omitempty"`
	Dim       int64           `json:"dim,omitempty"`
	Data      json.RawMessage `json:"data"`
}

// VectorsJSON is the JSON-channel wire shape of the vector-input union.
// Exactly one of the three shapes is populated: inline float rows, inline
// base64-encoded binary rows, or an identifier reference.
type VectorsJSON struct {
	Dim           int64       `json:"dim,omitempty"`
	Vectors       [][]float32 `json:"vectors,omitempty"`
	BinaryVectors [][]byte    `json:"binary_vectors,omitempty"`

	IDArray        []any    `json:"id_array,omitempty"`
	CollectionName string   `json:"collection_name,omitempty"`
	FieldName      string   `json:"field_name,omitempty"`
	PartitionNames []string `json:"partition_names,omitempty"`
}

// InsertRequestJSON is the JSON-channel insert envelope.
type InsertRequestJSON struct {
	CollectionName   string       `json:"collection_name"`
	PartitionName    string       `json:"partition_name,omitempty"`
	FieldsData       []*FieldJSON `json:"fields_data"`
	NumRows          int          `json:"num_rows"`
	ConsistencyLevel string       `json:"consistency_level,omitempty"`
}

// SearchRequestJSON is the JSON-channel search envelope.
type SearchRequestJSON struct {
	CollectionName   string       `json:"collection_name"`
	PartitionNames   []string     `json:"partition_names,omitempty"`
	VectorField      string       `json:"vector_field"`
	Vectors          *VectorsJSON `json:"vectors"`
	TopK             int64        `json:"top_k"`
	MetricType       string       `json:"metric_type,omitempty"`
	Expr             string       `json:"expr,omitempty"`
	OutputFields     []string     `json:"output_fields,omitempty"`
	ConsistencyLevel string       `json:"consistency_level,omitempty"`
}

// DistanceRequestJSON is the JSON-channel distance envelope.
type DistanceRequestJSON struct {
	OpLeft     *VectorsJSON `json:"op_left"`
	OpRight    *VectorsJSON `json:"op_right"`
	MetricType string       `json:"metric_type"`
}

// ResponseJSON is the generic JSON-channel response envelope. Code zero is
// success; any other code is a server failure surfaced to the caller
// unchanged.
type ResponseJSON struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// InsertResultJSON is the data payload of an insert response.
type InsertResultJSON struct {
	IDs       []any `json:"ids"`
	InsertCnt int64 `json:"insert_count"`
}

// SearchResultsJSON is the data payload of a search response. Each field
// arrives pre-shaped as arrays; decoding needs only type-tag dispatch.
type SearchResultsJSON struct {
	CollectionName string       `json:"collection_name"`
	FieldsData     []*FieldJSON `json:"fields_data"`
	IDs            []any        `json:"ids"`
	Scores         []float32    `json:"scores"`
	TopK           int64        `json:"top_k"`
	TopKs          []int64      `json:"top_ks"`
}

// DistanceResultsJSON is the data payload of a distance response.
type DistanceResultsJSON struct {
	Rows   int64     `json:"rows"`
	Cols   int64     `json:"cols"`
	Values []float32 `json:"values"`
}
