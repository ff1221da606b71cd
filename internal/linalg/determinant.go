// Package linalg computes determinants of fixed-shape arrays.
//
// Policy and size are selected by the types of the arguments. Determinant
// (the Simple policy) only accepts matrices whose dimension type is a
// tensor.SmallDim, so a 5×5 Simple determinant does not compile.
// DeterminantQR accepts any square matrix. There is no RREF entry point.
package linalg

import (
	"github.com/born-ml/detkit/internal/factor"
	"github.com/born-ml/detkit/internal/kernel"
	"github.com/born-ml/detkit/internal/tensor"
)

// Determinant computes det(m) with the closed-form kernel (Simple policy).
//
// Example:
//
//	m, _ := tensor.FromRows[float64, tensor.D2]([][]float64{{1, 2}, {3, 4}})
//	linalg.Determinant(m) // -2
func Determinant[T tensor.Float, N tensor.SmallDim](m tensor.Matrix[T, N]) T {
	return kernel.Det(m.Data(), tensor.ExtentOf[N]())
}

// DeterminantQR computes det(m) as the product of the diagonal of R from a
// QR factorization of m.
//
// The factorization does not track the sign of det(Q), so the result can
// have the opposite sign to Determinant. Its magnitude is the same.
func DeterminantQR[T tensor.Float, N tensor.Dim](m tensor.Matrix[T, N]) T {
	n := tensor.ExtentOf[N]()
	_, r := factor.QR(m.Data(), n)
	return factor.DiagProduct(r, n)
}
