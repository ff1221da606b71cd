// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/detkit/internal/tensor"
)

// Float is a constraint for array element types: float32 and float64.
type Float = tensor.Float

// DataType represents the element type of an array at run time.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Extents is the run-time view of a shape, one extent per axis.
type Extents = tensor.Extents

// Shape is a type-level shape.
type Shape = tensor.Shape

// Dim is a type-level axis extent.
type Dim = tensor.Dim

// SmallDim is an extent with a closed-form determinant kernel (D1..D4).
type SmallDim = tensor.SmallDim

// Provided dimensions.
type (
	D1 = tensor.D1
	D2 = tensor.D2
	D3 = tensor.D3
	D4 = tensor.D4
	D5 = tensor.D5
	D6 = tensor.D6
	D7 = tensor.D7
	D8 = tensor.D8
)

// Square is the shape of an N×N matrix.
type Square[N Dim] = tensor.Square[N]

// Axes1 is a rank-1 shape.
type Axes1[A Dim] = tensor.Axes1[A]

// Axes2 is a rank-2 shape.
type Axes2[A, B Dim] = tensor.Axes2[A, B]

// Axes3 is a rank-3 shape.
type Axes3[A, B, C Dim] = tensor.Axes3[A, B, C]

// Batched is a stack of N×N matrices indexed by the batch axes B.
type Batched[B Shape, N Dim] = tensor.Batched[B, N]

// Array is a fixed-shape array of element type T and shape S.
//
// Example:
//
//	var a tensor.Array[float32, tensor.Batched[tensor.Axes1[tensor.D5], tensor.D3]] // 5×3×3
type Array[T Float, S Shape] = tensor.Array[T, S]

// Matrix is a square array of extent N.
type Matrix[T Float, N Dim] = tensor.Matrix[T, N]

// ErrDataLength is returned when caller data does not fill a shape exactly.
var ErrDataLength = tensor.ErrDataLength

// ExtentOf returns the extent carried by the dimension type N.
func ExtentOf[N Dim]() int {
	return tensor.ExtentOf[N]()
}

// Zeros creates an array filled with zeros.
func Zeros[T Float, S Shape]() Array[T, S] {
	return tensor.Zeros[T, S]()
}

// Full creates an array filled with value.
func Full[T Float, S Shape](value T) Array[T, S] {
	return tensor.Full[T, S](value)
}

// Identity creates an N×N identity matrix.
func Identity[T Float, N Dim]() Matrix[T, N] {
	return tensor.Identity[T, N]()
}

// FromSlice creates an array from row-major data. The data is copied.
// Returns ErrDataLength if len(data) does not match the shape.
func FromSlice[T Float, S Shape](data []T) (Array[T, S], error) {
	return tensor.FromSlice[T, S](data)
}

// FromRows creates an N×N matrix from its rows.
func FromRows[T Float, N Dim](rows [][]T) (Matrix[T, N], error) {
	return tensor.FromRows[T, N](rows)
}

// Rand creates an array with values uniformly distributed in [-1, 1).
func Rand[T Float, S Shape](rng *rand.Rand) Array[T, S] {
	return tensor.Rand[T, S](rng)
}
