package tensor

import (
	"fmt"
	"strings"
)

// Extents is the runtime view of a shape: one extent per axis.
type Extents []int

// NumElements returns the total number of elements.
func (e Extents) NumElements() int {
	if len(e) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range e {
		n *= dim
	}
	return n
}

// Validate checks if the extents are valid (all dimensions > 0).
func (e Extents) Validate() error {
	for i, dim := range e {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Clone returns a copy of the extents.
func (e Extents) Clone() Extents {
	clone := make(Extents, len(e))
	copy(clone, e)
	return clone
}

// Strides calculates row-major strides.
// stride[i] = product of all extents after i.
func (e Extents) Strides() []int {
	strides := make([]int, len(e))
	if len(e) == 0 {
		return strides
	}

	strides[len(e)-1] = 1
	for i := len(e) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * e[i+1]
	}
	return strides
}

// String formats the extents as "2x3x4".
func (e Extents) String() string {
	parts := make([]string, len(e))
	for i, d := range e {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, "x")
}

// Shape is a type-level shape. Implementations are zero-size types whose
// Extents are fixed for the type, so every array of that shape has the same
// layout and the compiler rejects arrays of a different shape.
type Shape interface {
	Extents() Extents
}

// Square is the shape of an N×N matrix.
type Square[N Dim] struct{}

// Extents returns [n, n].
func (Square[N]) Extents() Extents {
	n := extentOf[N]()
	return Extents{n, n}
}

// Axes1 is a rank-1 shape, used as the batch axes of a rank-3 array.
type Axes1[A Dim] struct{}

// Extents returns [a].
func (Axes1[A]) Extents() Extents {
	return Extents{extentOf[A]()}
}

// Axes2 is a rank-2 shape with independent extents.
type Axes2[A, B Dim] struct{}

// Extents returns [a, b].
func (Axes2[A, B]) Extents() Extents {
	return Extents{extentOf[A](), extentOf[B]()}
}

// Axes3 is a rank-3 shape with independent extents.
type Axes3[A, B, C Dim] struct{}

// Extents returns [a, b, c].
func (Axes3[A, B, C]) Extents() Extents {
	return Extents{extentOf[A](), extentOf[B](), extentOf[C]()}
}

// Batched is a stack of N×N matrices indexed by the batch axes B.
// The last two axes share one dimension type, so they are equal by
// construction.
//
// Example:
//
//	// 2×3 batch of 2×2 matrices: shape [2, 3, 2, 2]
//	var a Array[float64, Batched[Axes2[D2, D3], D2]]
type Batched[B Shape, N Dim] struct{}

// Extents returns B's extents followed by [n, n].
func (Batched[B, N]) Extents() Extents {
	var b B
	n := extentOf[N]()
	return append(b.Extents().Clone(), n, n)
}

// BatchAxes returns the extents of the batch axes alone.
func (Batched[B, N]) BatchAxes() Extents {
	var b B
	return b.Extents()
}

// extentsOf returns the extents of the shape type S.
func extentsOf[S Shape]() Extents {
	var s S
	return s.Extents()
}
