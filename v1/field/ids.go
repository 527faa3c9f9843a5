package field

import (
	"fmt"
	"math"
)

// IDs is a homogeneous identifier list: either all int64 or all string.
// The zero value is an empty integer list.
type IDs struct {
	ints []int64
	strs []string
}

// NewInt64IDs creates an integer identifier list.
func NewInt64IDs(values ...int64) IDs {
	return IDs{ints: append([]int64(nil), values...)}
}

// NewStringIDs creates a string identifier list.
func NewStringIDs(values ...string) IDs {
	return IDs{strs: append([]string(nil), values...)}
}

// NewIDs builds an identifier list from untyped values, as received from
// configuration or JSON input. Integer kinds are widened to int64. A list
// mixing integer and string entries fails with ErrMixedIDTypes; any other
// element type fails with ErrUnsupportedFieldType.
func NewIDs(values []any) (IDs, error) {
	var (
		ints []int64
		strs []string
	)
	for i, v := range values {
		switch val := v.(type) {
		case int:
			ints = append(ints, int64(val))
		case int32:
			ints = append(ints, int64(val))
		case int64:
			ints = append(ints, val)
		case float64:
			// JSON numbers decode as float64 by default; only integral
			// values are valid identifiers.
			if val != math.Trunc(val) {
				return IDs{}, fmt.Errorf("id at index %d is not integral: %w", i, ErrUnsupportedFieldType)
			}
			ints = append(ints, int64(val))
		case string:
			strs = append(strs, val)
		default:
			return IDs{}, fmt.Errorf("id at index %d has type %T: %w", i, v, ErrUnsupportedFieldType)
		}
	}
	if len(ints) > 0 && len(strs) > 0 {
		return IDs{}, fmt.Errorf("id list mixes %d integer and %d string entries: %w",
			len(ints), len(strs), ErrMixedIDTypes)
	}
	if len(strs) > 0 {
		return IDs{strs: strs}, nil
	}
	return IDs{ints: ints}, nil
}

// Len returns the number of identifiers.
func (ids IDs) Len() int {
	if ids.strs != nil {
		return len(ids.strs)
	}
	return len(ids.ints)
}

// IsStrings reports whether the list holds string identifiers.
func (ids IDs) IsStrings() bool { return ids.strs != nil }

// Int64s returns the integer identifiers, or nil for a string list.
func (ids IDs) Int64s() []int64 { return ids.ints }

// Strings returns the string identifiers, or nil for an integer list.
func (ids IDs) Strings() []string { return ids.strs }

// Get returns the identifier at index i as int64 or string.
func (ids IDs) Get(i int) any {
	if ids.strs != nil {
		return ids.strs[i]
	}
	return ids.ints[i]
}

// Slice returns the sub-list [lo, hi). Used to split batched search results
// into per-query hit lists.
func (ids IDs) Slice(lo, hi int) IDs {
	if ids.strs != nil {
		return IDs{strs: ids.strs[lo:hi]}
	}
	return IDs{ints: ids.ints[lo:hi]}
}
