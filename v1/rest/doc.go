// Package rest implements the HTTP/JSON channel of the Vanta client data
// plane: the nested-array wire encoding of fields and vector inputs, the
// decode paths for response payloads, and a thin HTTP client that moves the
// envelopes.
//
// # Encoding
//
// Scalar columns become plain ordered JSON arrays; float-vector columns
// become an array-of-arrays with one inner array per row; binary-vector
// columns become base64-encoded row strings. Field identity and type tag
// travel as named properties next to the data, so the channel is
// self-describing and needs no sidecar metadata beyond the vector dimension.
//
// # Decoding
//
// The channel returns each field pre-shaped as arrays, so decoding is pure
// type-tag dispatch without any reslicing. The same closed variant set and the same
// error taxonomy apply as on the binary channel: unknown type names fail with
// field.ErrUnsupportedFieldType, structural violations with
// field.ErrMalformedResponse.
//
// # Client
//
// Client posts the envelopes to the /v1/entities endpoints and branches only
// on success or failure of the generic response envelope; server error codes
// and messages are surfaced to the caller unchanged.
package rest
