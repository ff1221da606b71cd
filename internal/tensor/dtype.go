// Package tensor provides the fixed-shape array types that the determinant
// dispatchers operate on.
package tensor

import "unsafe"

// Float is a constraint for supported element types.
// Determinants are only defined over the floating point types.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Float]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	}
	// Named types (~float32 / ~float64) fall through the type switch.
	if unsafe.Sizeof(dummy) == 4 {
		return Float32
	}
	return Float64
}
