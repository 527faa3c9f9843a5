// Package wire implements the binary channel of the Vanta client data plane:
// the compact RPC wire encoding of fields, vector inputs and operation
// envelopes, and the decode paths that reconstruct typed columns and result
// rows from response envelopes.
//
// # Encoding
//
// Scalar columns become flat typed arrays, one bucket per scalar kind (the
// Int8/Int16/Int32 variants share the int bucket and are narrowed back by
// their type tag on decode). Float-vector columns are flattened row-major
// into one contiguous float buffer of rows×dim values; binary-vector columns
// into one contiguous byte buffer of rows×⌈dim/8⌉ bytes. The dimension
// travels as sidecar metadata next to the flat buffer.
//
// Envelopes are framed in protobuf wire format, hand-encoded with
// google.golang.org/protobuf/encoding/protowire; the field numbers in
// marshal.go are the protocol contract. Marshaling is deterministic, so
// encoding the same request twice yields byte-identical output.
//
// # Decoding
//
// Decoding is the exact inverse of encoding. The row count of a flat vector
// buffer is computed as totalLength/dim; a buffer the dimension does not
// evenly divide is rejected with field.ErrMalformedResponse, as is any
// parallel-array length mismatch in a search result. A type tag outside the
// closed set fails with field.ErrUnsupportedFieldType. Nothing is ever
// silently coerced, truncated or padded.
//
// All functions in this package are stateless pure functions over data owned
// by the caller; concurrent use needs no coordination.
package wire
