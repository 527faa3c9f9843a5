package field

// DataType identifies the element type of a field column. The set is closed:
// both wire channels reject any tag outside of it. The numeric values are part
// of the Vanta wire contract and must not be reordered.
type DataType int32

const (
	DataTypeNone    DataType = 0
	DataTypeBool    DataType = 1
	DataTypeInt8    DataType = 2
	DataTypeInt16   DataType = 3
	DataTypeInt32   DataType = 4
	DataTypeInt64   DataType = 5
	DataTypeFloat   DataType = 10
	DataTypeDouble  DataType = 11
	DataTypeVarChar DataType = 20
	DataTypeString  DataType = 21
	DataTypeJSON    DataType = 23

	DataTypeBinaryVector DataType = 100
	DataTypeFloatVector  DataType = 101
)

// String returns the canonical name of the data type as used by the JSON channel.
func (t DataType) String() string {
	switch t {
	case DataTypeBool:
		return "Bool"
	case DataTypeInt8:
		return "Int8"
	case DataTypeInt16:
		return "Int16"
	case DataTypeInt32:
		return "Int32"
	case DataTypeInt64:
		return "Int64"
	case DataTypeFloat:
		return "Float"
	case DataTypeDouble:
		return "Double"
	case DataTypeVarChar:
		return "VarChar"
	case DataTypeString:
		return "String"
	case DataTypeJSON:
		return "JSON"
	case DataTypeBinaryVector:
		return "BinaryVector"
	case DataTypeFloatVector:
		return "FloatVector"
	default:
		return "None"
	}
}

// DataTypeFromString resolves a JSON-channel type name back to its tag.
// Unknown names resolve to DataTypeNone; the decode paths turn that into
// ErrUnsupportedFieldType.
func DataTypeFromString(s string) DataType {
	switch s {
	case "Bool":
		return DataTypeBool
	case "Int8":
		return DataTypeInt8
	case "Int16":
		return DataTypeInt16
	case "Int32":
		return DataTypeInt32
	case "Int64":
		return DataTypeInt64
	case "Float":
		return DataTypeFloat
	case "Double":
		return DataTypeDouble
	case "VarChar":
		return DataTypeVarChar
	case "String":
		return DataTypeString
	case "JSON":
		return DataTypeJSON
	case "BinaryVector":
		return DataTypeBinaryVector
	case "FloatVector":
		return DataTypeFloatVector
	default:
		return DataTypeNone
	}
}

// IsVector reports whether the type is one of the vector kinds.
func (t DataType) IsVector() bool {
	return t == DataTypeFloatVector || t == DataTypeBinaryVector
}

// ConsistencyLevel controls how fresh the data observed by a read operation
// must be. It is carried on request envelopes and interpreted server-side.
type ConsistencyLevel int32

const (
	ConsistencyStrong     ConsistencyLevel = 0
	ConsistencySession    ConsistencyLevel = 1
	ConsistencyBounded    ConsistencyLevel = 2
	ConsistencyEventually ConsistencyLevel = 3
)

// String returns the JSON-channel name of the consistency level.
func (c ConsistencyLevel) String() string {
	switch c {
	case ConsistencySession:
		return "Session"
	case ConsistencyBounded:
		return "Bounded"
	case ConsistencyEventually:
		return "Eventually"
	default:
		return "Strong"
	}
}

// Field is a named, homogeneous column of values submitted to or returned from
// the store. Implementations are immutable after construction; encoding lives
// in the wire and rest packages, keeping the wire-format concern out of the
// data model.
type Field interface {
	// Name returns the field name. Never empty.
	Name() string

	// Type returns the declared data-type tag, fixed at construction.
	Type() DataType

	// RowCount returns the number of rows held by the column.
	RowCount() int

	// IsDynamic reports whether the field was populated from the schema's
	// unstructured overflow bucket rather than a declared column.
	IsDynamic() bool
}
