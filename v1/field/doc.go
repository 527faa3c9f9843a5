// Package field defines the typed, columnar data model of the Vanta client
// data plane: the closed set of field variants, the identifier and
// vector-input unions, and the channel-agnostic request and result envelopes.
//
// # Overview
//
// Application data enters the client as named, homogeneous columns, one
// [Field] per collection column. Scalar variants (Bool, Int8..Int64, Float,
// Double, VarChar, String, JSON) hold one Go slice each; the vector variants
// ([FloatVectorField], [BinaryVectorField]) additionally fix a dimension that
// every row must match. All variants are immutable after construction, so
// concurrent encodes need no coordination.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────┐
//	│                 Application Layer                   │
//	│        (builds field.Field columns + requests)      │
//	└─────────────────────────┬───────────────────────────┘
//	                          │
//	          ┌───────────────┴───────────────┐
//	          ▼                               ▼
//	┌───────────────────┐           ┌───────────────────┐
//	│     v1/wire       │           │     v1/rest       │
//	│ (binary channel)  │           │  (JSON channel)   │
//	└───────────────────┘           └───────────────────┘
//
// The two channel packages hold the encode and decode functions; this package
// deliberately carries no wire knowledge, keeping the wire-format concern
// orthogonal to field identity.
//
// # Validation
//
// Every constructor validates its inputs up front: empty names, empty value
// sets and dimension violations fail with [ErrSchemaMismatch] before any
// encoding is attempted, so a partial batch is never transmitted. Decode-side
// violations surface as [ErrUnsupportedFieldType] or [ErrMalformedResponse];
// all four sentinel errors are non-retryable.
//
// # Usage
//
//	ids, _ := field.NewInt64("book_id", []int64{1, 2, 3})
//	vecs, _ := field.NewFloatVector("book_intro", [][]float32{
//	    {0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6},
//	})
//	req := &field.InsertRequest{
//	    Collection: "books",
//	    Fields:     []field.Field{ids, vecs},
//	}
//	if err := req.Validate(); err != nil {
//	    // row-count or dimension invariant violated
//	}
package field
