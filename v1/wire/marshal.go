package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// The binary channel frames every envelope in protobuf wire format,
// hand-encoded with protowire so no generated stubs are needed. Field numbers
// are part of the protocol contract and must not be reassigned. Output is
// deterministic: fields are appended in ascending number order and empty
// values are omitted.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendStrings(b []byte, num protowire.Number, values []string) []byte {
	for _, s := range values {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendBytesList(b []byte, num protowire.Number, values [][]byte) []byte {
	for _, v := range values {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// Packed repeated scalars: one length-delimited record holding all values.

func appendPackedBools(b []byte, num protowire.Number, values []bool) []byte {
	if len(values) == 0 {
		return b
	}
	var packed []byte
	for _, v := range values {
		packed = protowire.AppendVarint(packed, protowire.EncodeBool(v))
	}
	return appendMessage(b, num, packed)
}

func appendPackedInt32s(b []byte, num protowire.Number, values []int32) []byte {
	if len(values) == 0 {
		return b
	}
	var packed []byte
	for _, v := range values {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	return appendMessage(b, num, packed)
}

func appendPackedInt64s(b []byte, num protowire.Number, values []int64) []byte {
	if len(values) == 0 {
		return b
	}
	var packed []byte
	for _, v := range values {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	return appendMessage(b, num, packed)
}

func appendPackedFloats(b []byte, num protowire.Number, values []float32) []byte {
	if len(values) == 0 {
		return b
	}
	packed := make([]byte, 0, len(values)*4)
	for _, v := range values {
		packed = protowire.AppendFixed32(packed, math.Float32bits(v))
	}
	return appendMessage(b, num, packed)
}

func appendPackedDoubles(b []byte, num protowire.Number, values []float64) []byte {
	if len(values) == 0 {
		return b
	}
	packed := make([]byte, 0, len(values)*8)
	for _, v := range values {
		packed = protowire.AppendFixed64(packed, math.Float64bits(v))
	}
	return appendMessage(b, num, packed)
}

// ── Message Marshaling ───────────────────────────────────────────────────────

func marshalScalarPayload(p *ScalarPayload) []byte {
	var b []byte
	b = appendPackedBools(b, 1, p.Bool)
	b = appendPackedInt32s(b, 2, p.Int)
	b = appendPackedInt64s(b, 3, p.Long)
	b = appendPackedFloats(b, 4, p.Float)
	b = appendPackedDoubles(b, 5, p.Double)
	b = appendStrings(b, 6, p.Str)
	b = appendBytesList(b, 7, p.JSON)
	return b
}

func marshalVectorPayload(p *VectorPayload) []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(p.Dim))
	b = appendPackedFloats(b, 2, p.Float)
	b = appendBytes(b, 3, p.Binary)
	return b
}

func marshalFieldData(fd *FieldData) []byte {
	var b []byte
	b = appendString(b, 1, fd.FieldName)
	b = appendVarint(b, 2, uint64(fd.Type))
	if fd.IsDynamic {
		b = appendVarint(b, 3, 1)
	}
	if fd.Scalars != nil {
		b = appendMessage(b, 4, marshalScalarPayload(fd.Scalars))
	}
	if fd.Vectors != nil {
		b = appendMessage(b, 5, marshalVectorPayload(fd.Vectors))
	}
	return b
}

func marshalIDsData(d *IDsData) []byte {
	var b []byte
	b = appendPackedInt64s(b, 1, d.Int)
	b = appendStrings(b, 2, d.Str)
	return b
}

func marshalVectorIDRef(r *VectorIDRef) []byte {
	var b []byte
	b = appendString(b, 1, r.Collection)
	b = appendString(b, 2, r.FieldName)
	b = appendStrings(b, 3, r.Partitions)
	if r.IDs != nil {
		b = appendMessage(b, 4, marshalIDsData(r.IDs))
	}
	return b
}

func marshalVectorsData(v *VectorsData) []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(v.Dim))
	b = appendPackedFloats(b, 2, v.Float)
	b = appendBytes(b, 3, v.Binary)
	if v.IDRef != nil {
		b = appendMessage(b, 4, marshalVectorIDRef(v.IDRef))
	}
	return b
}

// MarshalInsertRequest serializes an insert envelope to binary wire bytes.
func MarshalInsertRequest(r *InsertRequestData) []byte {
	var b []byte
	b = appendString(b, 1, r.Collection)
	b = appendString(b, 2, r.Partition)
	for _, fd := range r.Fields {
		b = appendMessage(b, 3, marshalFieldData(fd))
	}
	b = appendVarint(b, 4, r.NumRows)
	b = appendVarint(b, 5, uint64(r.Consistency))
	return b
}

// MarshalSearchRequest serializes a search envelope to binary wire bytes.
func MarshalSearchRequest(r *SearchRequestData) []byte {
	var b []byte
	b = appendString(b, 1, r.Collection)
	b = appendStrings(b, 2, r.Partitions)
	b = appendString(b, 3, r.VectorField)
	if r.Vectors != nil {
		b = appendMessage(b, 4, marshalVectorsData(r.Vectors))
	}
	b = appendVarint(b, 5, uint64(r.TopK))
	b = appendString(b, 6, r.Metric)
	b = appendString(b, 7, r.Expr)
	b = appendStrings(b, 8, r.OutputFields)
	b = appendVarint(b, 9, uint64(r.Consistency))
	return b
}

// MarshalDistanceRequest serializes a distance envelope to binary wire bytes.
func MarshalDistanceRequest(r *DistanceRequestData) []byte {
	var b []byte
	if r.Left != nil {
		b = appendMessage(b, 1, marshalVectorsData(r.Left))
	}
	if r.Right != nil {
		b = appendMessage(b, 2, marshalVectorsData(r.Right))
	}
	b = appendString(b, 3, r.Metric)
	return b
}

// MarshalDeleteRequest serializes a delete envelope to binary wire bytes.
func MarshalDeleteRequest(r *DeleteRequestData) []byte {
	var b []byte
	b = appendString(b, 1, r.Collection)
	b = appendString(b, 2, r.Partition)
	b = appendString(b, 3, r.Expr)
	b = appendVarint(b, 4, uint64(r.Consistency))
	return b
}

// MarshalFlushRequest serializes a flush envelope to binary wire bytes.
func MarshalFlushRequest(r *FlushRequestData) []byte {
	var b []byte
	b = appendStrings(b, 1, r.Collections)
	return b
}

func marshalStatus(s *Status) []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(s.Code))
	b = appendString(b, 2, s.Reason)
	return b
}

func marshalSearchResults(d *SearchResultsData) []byte {
	var b []byte
	b = appendString(b, 1, d.Collection)
	for _, fd := range d.Fields {
		b = appendMessage(b, 2, marshalFieldData(fd))
	}
	if d.IDs != nil {
		b = appendMessage(b, 3, marshalIDsData(d.IDs))
	}
	b = appendPackedFloats(b, 4, d.Scores)
	b = appendVarint(b, 5, uint64(d.TopK))
	b = appendPackedInt64s(b, 6, d.TopKs)
	return b
}

func marshalDistanceResults(d *DistanceResultsData) []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(d.Rows))
	b = appendVarint(b, 2, uint64(d.Cols))
	b = appendPackedFloats(b, 3, d.Values)
	return b
}

// MarshalInsertResponse serializes an insert response envelope. Used by tests
// and server-side tooling; clients normally only unmarshal responses.
func MarshalInsertResponse(r *InsertResponseData) []byte {
	var b []byte
	if r.Status != nil {
		b = appendMessage(b, 1, marshalStatus(r.Status))
	}
	if r.IDs != nil {
		b = appendMessage(b, 2, marshalIDsData(r.IDs))
	}
	b = appendVarint(b, 3, uint64(r.InsertCnt))
	return b
}

// MarshalDeleteResponse serializes a delete response envelope.
func MarshalDeleteResponse(r *DeleteResponseData) []byte {
	var b []byte
	if r.Status != nil {
		b = appendMessage(b, 1, marshalStatus(r.Status))
	}
	b = appendVarint(b, 2, uint64(r.DeleteCnt))
	return b
}

// MarshalFlushResponse serializes a flush response envelope.
func MarshalFlushResponse(r *FlushResponseData) []byte {
	var b []byte
	if r.Status != nil {
		b = appendMessage(b, 1, marshalStatus(r.Status))
	}
	return b
}

// MarshalSearchResponse serializes a search response envelope.
func MarshalSearchResponse(r *SearchResponseData) []byte {
	var b []byte
	if r.Status != nil {
		b = appendMessage(b, 1, marshalStatus(r.Status))
	}
	if r.Results != nil {
		b = appendMessage(b, 2, marshalSearchResults(r.Results))
	}
	return b
}

// MarshalDistanceResponse serializes a distance response envelope.
func MarshalDistanceResponse(r *DistanceResponseData) []byte {
	var b []byte
	if r.Status != nil {
		b = appendMessage(b, 1, marshalStatus(r.Status))
	}
	if r.Results != nil {
		b = appendMessage(b, 2, marshalDistanceResults(r.Results))
	}
	return b
}
