// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-shape arrays for the detkit determinant
// library.
//
// # Overview
//
// Shapes are types, not values. Each axis extent is a dimension type (D1..D8,
// or a caller-defined type with an Extent method) and shapes are composed
// from them:
//   - Square[N]: an N×N matrix
//   - Axes1[A], Axes2[A, B], Axes3[A, B, C]: batch axes
//   - Batched[B, N]: N×N matrices stacked along the batch axes B
//
// An Array[T, S] owns contiguous row-major storage of exactly the size S
// implies, so arrays of different shapes are different types and shape
// mismatches are compile errors.
//
// # Basic Usage
//
//	import "github.com/born-ml/detkit/tensor"
//
//	func main() {
//	    m, err := tensor.FromRows[float64, tensor.D2]([][]float64{
//	        {1, 2},
//	        {3, 4},
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(m.Shape()) // 2x2
//	}
//
// # Supported Data Types
//
// Arrays hold float32 or float64 elements (and named types based on them).
//
// # Thread Safety
//
// Arrays are not synchronized. Concurrent reads are safe; Set must not run
// concurrently with other access to the same array.
package tensor
