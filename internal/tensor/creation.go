package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates an array filled with zeros.
//
// Example:
//
//	m := tensor.Zeros[float32, tensor.Square[tensor.D3]]()
func Zeros[T Float, S Shape]() Array[T, S] {
	shape := extentsOf[S]()
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return Array[T, S]{data: make([]T, shape.NumElements())}
}

// Full creates an array filled with a specific value.
func Full[T Float, S Shape](value T) Array[T, S] {
	a := Zeros[T, S]()
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Identity creates an N×N identity matrix.
//
// Example:
//
//	eye := tensor.Identity[float64, tensor.D3]()
func Identity[T Float, N Dim]() Matrix[T, N] {
	m := Zeros[T, Square[N]]()
	n := extentOf[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// FromSlice creates an array from a Go slice in row-major order.
// The slice is copied into the array's memory.
func FromSlice[T Float, S Shape](data []T) (Array[T, S], error) {
	shape := extentsOf[S]()
	if shape.NumElements() != len(data) {
		return Array[T, S]{}, fmt.Errorf("%w: shape %s requires %d elements, but got %d",
			ErrDataLength, shape, shape.NumElements(), len(data))
	}

	a := Zeros[T, S]()
	copy(a.data, data)
	return a, nil
}

// FromRows creates an N×N matrix from its rows.
func FromRows[T Float, N Dim](rows [][]T) (Matrix[T, N], error) {
	n := extentOf[N]()
	if len(rows) != n {
		return Matrix[T, N]{}, fmt.Errorf("%w: expected %d rows, got %d", ErrDataLength, n, len(rows))
	}

	m := Zeros[T, Square[N]]()
	for i, row := range rows {
		if len(row) != n {
			return Matrix[T, N]{}, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrDataLength, i, len(row), n)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m, nil
}

// Rand creates an array with values uniformly distributed in [-1, 1).
// The caller supplies the source so results are reproducible.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	m := tensor.Rand[float64, tensor.Square[tensor.D4]](rng)
func Rand[T Float, S Shape](rng *rand.Rand) Array[T, S] {
	a := Zeros[T, S]()
	for i := range a.data {
		a.data[i] = T(2*rng.Float64() - 1)
	}
	return a
}
