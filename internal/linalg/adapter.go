package linalg

import (
	"math"

	"github.com/born-ml/detkit/internal/expr"
	"github.com/born-ml/detkit/internal/tensor"
)

// Det evaluates e and returns its determinant (Simple policy).
func Det[T tensor.Float, N tensor.SmallDim](e expr.Expr[T, tensor.Square[N]]) T {
	return Determinant(expr.Evaluate(e))
}

// AbsDet evaluates e and returns |det(e)| (Simple policy).
func AbsDet[T tensor.Float, N tensor.SmallDim](e expr.Expr[T, tensor.Square[N]]) T {
	return abs(Det(e))
}

// LogDet evaluates e and returns log|det(e)| (Simple policy).
//
// The sign of the determinant is discarded before the logarithm and cannot
// be recovered from the result. A singular matrix yields -Inf.
func LogDet[T tensor.Float, N tensor.SmallDim](e expr.Expr[T, tensor.Square[N]]) T {
	return logAbs(Det(e))
}

// DetQR evaluates e and returns its determinant (QR policy).
func DetQR[T tensor.Float, N tensor.Dim](e expr.Expr[T, tensor.Square[N]]) T {
	return DeterminantQR(expr.Evaluate(e))
}

// AbsDetQR evaluates e and returns |det(e)| (QR policy).
func AbsDetQR[T tensor.Float, N tensor.Dim](e expr.Expr[T, tensor.Square[N]]) T {
	return abs(DetQR(e))
}

// LogDetQR evaluates e and returns log|det(e)| (QR policy).
// See LogDet for the sign and singular-matrix behavior.
func LogDetQR[T tensor.Float, N tensor.Dim](e expr.Expr[T, tensor.Square[N]]) T {
	return logAbs(DetQR(e))
}

func abs[T tensor.Float](v T) T {
	return T(math.Abs(float64(v)))
}

func logAbs[T tensor.Float](v T) T {
	return T(math.Log(math.Abs(float64(v))))
}
