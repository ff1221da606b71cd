// Package expr defines lazy array expressions.
//
// An expression records an operation and its operands without computing
// anything. Evaluate materializes it into a fresh array.
//
// Supported nodes:
//   - Add, Sub, Mul: element-wise, any shape
//   - Scale, Neg: scalar multiplication
//   - MatMul, Transpose: square matrices
//
// Nodes hold no state beyond their operands, so evaluating the same
// expression twice gives bit-identical results.
package expr

import "github.com/born-ml/detkit/internal/tensor"

// Expr is a pending computation producing an array of shape S.
// tensor.Array satisfies Expr and evaluates to itself.
type Expr[T tensor.Float, S tensor.Shape] interface {
	// Eval computes the expression. Operands are evaluated first; the
	// result is newly allocated unless the expression is a bare array.
	Eval() tensor.Array[T, S]
}

// Of lifts an array into an expression.
func Of[T tensor.Float, S tensor.Shape](a tensor.Array[T, S]) Expr[T, S] {
	return a
}

// Evaluate forces e into a concrete array.
func Evaluate[T tensor.Float, S tensor.Shape](e Expr[T, S]) tensor.Array[T, S] {
	return e.Eval()
}
