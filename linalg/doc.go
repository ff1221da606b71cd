// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg computes determinants of fixed-shape arrays.
//
// # Policies
//
// The algorithm is chosen by which function is called. The argument types
// then decide whether the call compiles:
//   - Determinant, Det, AbsDet, LogDet: Simple policy, closed-form kernel,
//     matrices up to 4×4 (dimension types D1..D4). Larger matrices do not
//     compile.
//   - DeterminantQR, DetQR, AbsDetQR, LogDetQR: QR policy, any extent. The
//     sign of the result is not guaranteed to match the Simple policy.
//   - BatchDeterminant: Simple policy over every matrix of a Batched array.
//   - RREF has no implementation and no entry point.
//
// Callers that only know the policy at run time use Resolve, which reports
// ErrUnsupported for the combinations the typed API rejects at build time.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/detkit/expr"
//	    "github.com/born-ml/detkit/linalg"
//	    "github.com/born-ml/detkit/tensor"
//	)
//
//	func main() {
//	    a, _ := tensor.FromRows[float64, tensor.D2]([][]float64{{1, 2}, {3, 4}})
//	    linalg.Determinant(a)                    // -2
//	    linalg.LogDet(expr.Scale(2, expr.Of(a))) // log 8
//	}
//
// # Thread Safety
//
// All functions are synchronous and keep no state between calls. They are
// safe to call concurrently on independent inputs.
package linalg
