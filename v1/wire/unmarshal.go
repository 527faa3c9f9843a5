package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vantadb/vanta-go/v1/field"
)

func errTruncated(msg string) error {
	return fmt.Errorf("wire: truncated or invalid %s message: %w", msg, field.ErrMalformedResponse)
}

func consumePackedBools(b []byte) ([]bool, error) {
	var out []bool
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, errTruncated("packed bool")
		}
		out = append(out, protowire.DecodeBool(v))
		b = b[n:]
	}
	return out, nil
}

func consumePackedInt32s(b []byte) ([]int32, error) {
	var out []int32
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, errTruncated("packed int32")
		}
		out = append(out, int32(v))
		b = b[n:]
	}
	return out, nil
}

func consumePackedInt64s(b []byte) ([]int64, error) {
	var out []int64
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, errTruncated("packed int64")
		}
		out = append(out, int64(v))
		b = b[n:]
	}
	return out, nil
}

func consumePackedFloats(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, errTruncated("packed float")
	}
	out := make([]float32, 0, len(b)/4)
	for len(b) > 0 {
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return nil, errTruncated("packed float")
		}
		out = append(out, math.Float32frombits(v))
		b = b[n:]
	}
	return out, nil
}

func consumePackedDoubles(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, errTruncated("packed double")
	}
	out := make([]float64, 0, len(b)/8)
	for len(b) > 0 {
		v, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return nil, errTruncated("packed double")
		}
		out = append(out, math.Float64frombits(v))
		b = b[n:]
	}
	return out, nil
}

// walkFields iterates every tagged field of a wire message, handing the field
// number and raw payload to visit. Length-delimited payloads are passed as-is;
// varint payloads are passed pre-decoded. Unknown fields are skipped, matching
// protobuf semantics.
func walkFields(b []byte, msg string, visit func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errTruncated(msg)
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errTruncated(msg)
			}
			if err := visit(num, typ, nil, v); err != nil {
				return err
			}
			b = b[n:]
		case protowire.BytesType:
			payload, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errTruncated(msg)
			}
			if err := visit(num, typ, payload, 0); err != nil {
				return err
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errTruncated(msg)
			}
			b = b[n:]
		}
	}
	return nil
}

func unmarshalScalarPayload(b []byte) (*ScalarPayload, error) {
	p := &ScalarPayload{}
	err := walkFields(b, "scalar payload", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			p.Bool, err = consumePackedBools(payload)
		case 2:
			p.Int, err = consumePackedInt32s(payload)
		case 3:
			p.Long, err = consumePackedInt64s(payload)
		case 4:
			p.Float, err = consumePackedFloats(payload)
		case 5:
			p.Double, err = consumePackedDoubles(payload)
		case 6:
			p.Str = append(p.Str, string(payload))
		case 7:
			p.JSON = append(p.JSON, append([]byte(nil), payload...))
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func unmarshalVectorPayload(b []byte) (*VectorPayload, error) {
	p := &VectorPayload{}
	err := walkFields(b, "vector payload", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			p.Dim = int64(varint)
		case 2:
			p.Float, err = consumePackedFloats(payload)
		case 3:
			p.Binary = append([]byte(nil), payload...)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func unmarshalFieldData(b []byte) (*FieldData, error) {
	fd := &FieldData{}
	err := walkFields(b, "field data", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			fd.FieldName = string(payload)
		case 2:
			fd.Type = field.DataType(varint)
		case 3:
			fd.IsDynamic = protowire.DecodeBool(varint)
		case 4:
			fd.Scalars, err = unmarshalScalarPayload(payload)
		case 5:
			fd.Vectors, err = unmarshalVectorPayload(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return fd, nil
}

func unmarshalIDsData(b []byte) (*IDsData, error) {
	d := &IDsData{}
	err := walkFields(b, "ids", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			d.Int, err = consumePackedInt64s(payload)
		case 2:
			d.Str = append(d.Str, string(payload))
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func unmarshalVectorIDRef(b []byte) (*VectorIDRef, error) {
	r := &VectorIDRef{}
	err := walkFields(b, "vector id ref", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			r.Collection = string(payload)
		case 2:
			r.FieldName = string(payload)
		case 3:
			r.Partitions = append(r.Partitions, string(payload))
		case 4:
			r.IDs, err = unmarshalIDsData(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func unmarshalVectorsData(b []byte) (*VectorsData, error) {
	v := &VectorsData{}
	err := walkFields(b, "vectors", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			v.Dim = int64(varint)
		case 2:
			v.Float, err = consumePackedFloats(payload)
		case 3:
			v.Binary = append([]byte(nil), payload...)
		case 4:
			v.IDRef, err = unmarshalVectorIDRef(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalInsertRequest parses an insert envelope from binary wire bytes.
func UnmarshalInsertRequest(b []byte) (*InsertRequestData, error) {
	r := &InsertRequestData{}
	err := walkFields(b, "insert request", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		switch num {
		case 1:
			r.Collection = string(payload)
		case 2:
			r.Partition = string(payload)
		case 3:
			fd, err := unmarshalFieldData(payload)
			if err != nil {
				return err
			}
			r.Fields = append(r.Fields, fd)
		case 4:
			r.NumRows = varint
		case 5:
			r.Consistency = int32(varint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalSearchRequest parses a search envelope from binary wire bytes.
func UnmarshalSearchRequest(b []byte) (*SearchRequestData, error) {
	r := &SearchRequestData{}
	err := walkFields(b, "search request", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			r.Collection = string(payload)
		case 2:
			r.Partitions = append(r.Partitions, string(payload))
		case 3:
			r.VectorField = string(payload)
		case 4:
			r.Vectors, err = unmarshalVectorsData(payload)
		case 5:
			r.TopK = int64(varint)
		case 6:
			r.Metric = string(payload)
		case 7:
			r.Expr = string(payload)
		case 8:
			r.OutputFields = append(r.OutputFields, string(payload))
		case 9:
			r.Consistency = int32(varint)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalDistanceRequest parses a distance envelope from binary wire bytes.
func UnmarshalDistanceRequest(b []byte) (*DistanceRequestData, error) {
	r := &DistanceRequestData{}
	err := walkFields(b, "distance request", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			r.Left, err = unmarshalVectorsData(payload)
		case 2:
			r.Right, err = unmarshalVectorsData(payload)
		case 3:
			r.Metric = string(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func unmarshalStatus(b []byte) (*Status, error) {
	s := &Status{}
	err := walkFields(b, "status", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		switch num {
		case 1:
			s.Code = int32(varint)
		case 2:
			s.Reason = string(payload)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func unmarshalSearchResults(b []byte) (*SearchResultsData, error) {
	d := &SearchResultsData{}
	err := walkFields(b, "search results", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			d.Collection = string(payload)
		case 2:
			var fd *FieldData
			if fd, err = unmarshalFieldData(payload); err == nil {
				d.Fields = append(d.Fields, fd)
			}
		case 3:
			d.IDs, err = unmarshalIDsData(payload)
		case 4:
			d.Scores, err = consumePackedFloats(payload)
		case 5:
			d.TopK = int64(varint)
		case 6:
			d.TopKs, err = consumePackedInt64s(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func unmarshalDistanceResults(b []byte) (*DistanceResultsData, error) {
	d := &DistanceResultsData{}
	err := walkFields(b, "distance results", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			d.Rows = int64(varint)
		case 2:
			d.Cols = int64(varint)
		case 3:
			d.Values, err = consumePackedFloats(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalInsertResponse parses an insert response envelope.
func UnmarshalInsertResponse(b []byte) (*InsertResponseData, error) {
	r := &InsertResponseData{}
	err := walkFields(b, "insert response", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			r.Status, err = unmarshalStatus(payload)
		case 2:
			r.IDs, err = unmarshalIDsData(payload)
		case 3:
			r.InsertCnt = int64(varint)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalDeleteRequest parses a delete envelope from binary wire bytes.
func UnmarshalDeleteRequest(b []byte) (*DeleteRequestData, error) {
	r := &DeleteRequestData{}
	err := walkFields(b, "delete request", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		switch num {
		case 1:
			r.Collection = string(payload)
		case 2:
			r.Partition = string(payload)
		case 3:
			r.Expr = string(payload)
		case 4:
			r.Consistency = int32(varint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalFlushRequest parses a flush envelope from binary wire bytes.
func UnmarshalFlushRequest(b []byte) (*FlushRequestData, error) {
	r := &FlushRequestData{}
	err := walkFields(b, "flush request", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		if num == 1 {
			r.Collections = append(r.Collections, string(payload))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalDeleteResponse parses a delete response envelope.
func UnmarshalDeleteResponse(b []byte) (*DeleteResponseData, error) {
	r := &DeleteResponseData{}
	err := walkFields(b, "delete response", func(num protowire.Number, typ protowire.Type, payload []byte, varint uint64) error {
		var err error
		switch num {
		case 1:
			r.Status, err = unmarshalStatus(payload)
		case 2:
			r.DeleteCnt = int64(varint)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalFlushResponse parses a flush response envelope.
func UnmarshalFlushResponse(b []byte) (*FlushResponseData, error) {
	r := &FlushResponseData{}
	err := walkFields(b, "flush response", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		if num == 1 {
			r.Status, err = unmarshalStatus(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalSearchResponse parses a search response envelope.
func UnmarshalSearchResponse(b []byte) (*SearchResponseData, error) {
	r := &SearchResponseData{}
	err := walkFields(b, "search response", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			r.Status, err = unmarshalStatus(payload)
		case 2:
			r.Results, err = unmarshalSearchResults(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalDistanceResponse parses a distance response envelope.
func UnmarshalDistanceResponse(b []byte) (*DistanceResponseData, error) {
	r := &DistanceResponseData{}
	err := walkFields(b, "distance response", func(num protowire.Number, typ protowire.Type, payload []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			r.Status, err = unmarshalStatus(payload)
		case 2:
			r.Results, err = unmarshalDistanceResults(payload)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
