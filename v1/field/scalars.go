package field

import (
	"fmt"
	"slices"
)

// DynamicFieldName is the reserved name of the schema overflow bucket.
// Dynamic JSON columns decoded from a response carry this name.
const DynamicFieldName = "$meta"

// column is the shared storage for every scalar variant: an immutable,
// ordered sequence of values of one element type plus the field identity.
type column[T any] struct {
	name    string
	dynamic bool
	values  []T
}

func (c *column[T]) Name() string    { return c.name }
func (c *column[T]) RowCount() int   { return len(c.values) }
func (c *column[T]) IsDynamic() bool { return c.dynamic }

// Values returns the column's values. The returned slice is owned by the
// field and must not be modified.
func (c *column[T]) Values() []T { return c.values }

// newColumn validates the field identity and value set shared by all scalar
// constructors. The input slice is copied so later mutation by the caller
// cannot break the immutability contract.
func newColumn[T any](name string, values []T) (column[T], error) {
	if name == "" {
		return column[T]{}, fmt.Errorf("field name cannot be empty: %w", ErrSchemaMismatch)
	}
	if len(values) == 0 {
		return column[T]{}, fmt.Errorf("field %q: values cannot be empty: %w", name, ErrSchemaMismatch)
	}
	return column[T]{name: name, values: slices.Clone(values)}, nil
}

// ── Scalar Variants ──────────────────────────────────────────────────────────

// BoolField is a column of booleans.
type BoolField struct{ column[bool] }

func (f *BoolField) Type() DataType { return DataTypeBool }

// NewBool creates a boolean column.
func NewBool(name string, values []bool) (*BoolField, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &BoolField{c}, nil
}

// Int8Field is a column of 8-bit integers.
type Int8Field struct{ column[int8] }

func (f *Int8Field) Type() DataType { return DataTypeInt8 }

// NewInt8 creates an int8 column.
func NewInt8(name string, values []int8) (*Int8Field, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &Int8Field{c}, nil
}

// Int16Field is a column of 16-bit integers.
type Int16Field struct{ column[int16] }

func (f *Int16Field) Type() DataType { return DataTypeInt16 }

// NewInt16 creates an int16 column.
func NewInt16(name string, values []int16) (*Int16Field, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &Int16Field{c}, nil
}

// Int32Field is a column of 32-bit integers.
type Int32Field struct{ column[int32] }

func (f *Int32Field) Type() DataType { return DataTypeInt32 }

// NewInt32 creates an int32 column.
func NewInt32(name string, values []int32) (*Int32Field, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &Int32Field{c}, nil
}

// Int64Field is a column of 64-bit integers.
type Int64Field struct{ column[int64] }

func (f *Int64Field) Type() DataType { return DataTypeInt64 }

// NewInt64 creates an int64 column.
func NewInt64(name string, values []int64) (*Int64Field, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &Int64Field{c}, nil
}

// FloatField is a column of 32-bit floats.
type FloatField struct{ column[float32] }

func (f *FloatField) Type() DataType { return DataTypeFloat }

// NewFloat creates a float32 column.
func NewFloat(name string, values []float32) (*FloatField, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &FloatField{c}, nil
}

// DoubleField is a column of 64-bit floats.
type DoubleField struct{ column[float64] }

func (f *DoubleField) Type() DataType { return DataTypeDouble }

// NewDouble creates a float64 column.
func NewDouble(name string, values []float64) (*DoubleField, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &DoubleField{c}, nil
}

// VarCharField is a column of bounded-length strings.
type VarCharField struct{ column[string] }

func (f *VarCharField) Type() DataType { return DataTypeVarChar }

// NewVarChar creates a VarChar column.
func NewVarChar(name string, values []string) (*VarCharField, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &VarCharField{c}, nil
}

// StringField is a column of unbounded strings.
type StringField struct{ column[string] }

func (f *StringField) Type() DataType { return DataTypeString }

// NewString creates a string column.
func NewString(name string, values []string) (*StringField, error) {
	c, err := newColumn(name, values)
	if err != nil {
		return nil, err
	}
	return &StringField{c}, nil
}

// JSONField is a column of raw JSON documents, one per row. With the dynamic
// flag set it represents the schema's overflow bucket; the merge semantics of
// dynamic values with declared columns are a server-side concern.
type JSONField struct{ column[[]byte] }

func (f *JSONField) Type() DataType { return DataTypeJSON }

// NewJSON creates a JSON column from raw documents.
func NewJSON(name string, rows [][]byte) (*JSONField, error) {
	c, err := newColumn(name, rows)
	if err != nil {
		return nil, err
	}
	return &JSONField{c}, nil
}

// NewDynamic creates the dynamic overflow column. It always carries the
// reserved DynamicFieldName.
func NewDynamic(rows [][]byte) (*JSONField, error) {
	c, err := newColumn(DynamicFieldName, rows)
	if err != nil {
		return nil, err
	}
	c.dynamic = true
	return &JSONField{c}, nil
}
