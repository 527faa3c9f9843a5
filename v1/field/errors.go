package field

import "errors"

// Common data-plane errors. All of them are local and non-retryable: they are
// detected synchronously at construction, encode or decode time and abort the
// whole operation before any bytes reach the wire.
var (
	// ErrSchemaMismatch is returned when a row-count or dimension invariant
	// is violated at construction or encode time.
	ErrSchemaMismatch = errors.New("field: schema mismatch")

	// ErrUnsupportedFieldType is returned when an unknown or unexpected
	// data-type tag is encountered during encoding or decoding.
	ErrUnsupportedFieldType = errors.New("field: unsupported field type")

	// ErrMalformedResponse is returned when a decoded response violates a
	// structural invariant, e.g. a flat vector buffer whose length is not
	// divisible by the declared dimension, or parallel arrays of unequal length.
	ErrMalformedResponse = errors.New("field: malformed response")

	// ErrMixedIDTypes is returned when an identifier list contains both
	// integer and string entries.
	ErrMixedIDTypes = errors.New("field: mixed identifier types")
)

// IsSchemaMismatch checks if the error is a schema-mismatch error.
func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

// IsUnsupportedFieldType checks if the error is an unsupported-type error.
func IsUnsupportedFieldType(err error) bool {
	return errors.Is(err, ErrUnsupportedFieldType)
}

// IsMalformedResponse checks if the error is a malformed-response error.
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsMixedIDTypes checks if the error is a mixed-identifier error.
func IsMixedIDTypes(err error) bool {
	return errors.Is(err, ErrMixedIDTypes)
}
