package tensor

import "fmt"

// Array is an array whose rank and extents are fixed by its shape type S.
//
// Storage is contiguous and row-major with exactly S.Extents().NumElements()
// elements. The zero value reads as all zeros.
//
// Copying an Array value shares its storage, and Eval returns the receiver
// without copying. Use Clone for an independent copy. No function in this
// module writes to an array it received as input.
//
// Type Parameters:
//   - T: element type (float32 or float64)
//   - S: type-level shape (Square, Batched, Axes1..Axes3, or a caller type)
//
// Example:
//
//	m, _ := tensor.FromSlice[float64, tensor.Square[tensor.D2]]([]float64{1, 2, 3, 4})
//	m.At(1, 0) // 3
type Array[T Float, S Shape] struct {
	data []T
}

// Matrix is a square array of extent N.
type Matrix[T Float, N Dim] = Array[T, Square[N]]

// Shape returns the array's extents.
func (a Array[T, S]) Shape() Extents {
	return extentsOf[S]()
}

// Rank returns the number of axes.
func (a Array[T, S]) Rank() int {
	return len(extentsOf[S]())
}

// DType returns the array's data type.
func (a Array[T, S]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (a Array[T, S]) NumElements() int {
	return extentsOf[S]().NumElements()
}

// Data returns the flat row-major storage.
// The slice directly accesses the underlying memory (zero-copy), except for
// the zero value, which returns fresh zeros.
func (a Array[T, S]) Data() []T {
	if a.data == nil {
		return make([]T, a.NumElements())
	}
	return a.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a Array[T, S]) At(indices ...int) T {
	if a.data == nil {
		a.offset(indices) // bounds check only
		return 0
	}
	return a.data[a.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds or the array has no storage.
func (a Array[T, S]) Set(value T, indices ...int) {
	if a.data == nil {
		panic("Set on zero Array; create it with Zeros or FromSlice")
	}
	a.data[a.offset(indices)] = value
}

func (a Array[T, S]) offset(indices []int) int {
	shape := extentsOf[S]()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := 0
	strides := shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the array.
func (a Array[T, S]) Clone() Array[T, S] {
	data := make([]T, a.NumElements())
	copy(data, a.data)
	return Array[T, S]{data: data}
}

// Eval returns the array itself, so arrays can be used wherever a lazy
// expression is accepted.
func (a Array[T, S]) Eval() Array[T, S] {
	return a
}

// String returns a human-readable representation of the array.
func (a Array[T, S]) String() string {
	return fmt.Sprintf("Array[%s]%s", a.DType(), a.Shape())
}
