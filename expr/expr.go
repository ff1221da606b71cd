// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr builds lazy array expressions.
//
// Expressions are evaluated only when a result is requested, for example by
// linalg.Det:
//
//	a, _ := tensor.FromRows[float64, tensor.D2]([][]float64{{1, 2}, {3, 4}})
//	e := expr.MatMul(expr.Of(a), expr.Transpose(expr.Of(a)))
//	linalg.Det(e) // det(a·aᵀ) = 4
package expr

import (
	"github.com/born-ml/detkit/internal/expr"
	"github.com/born-ml/detkit/tensor"
)

// Expr is a pending computation producing an array of shape S.
// tensor.Array satisfies Expr.
type Expr[T tensor.Float, S tensor.Shape] = expr.Expr[T, S]

// Of lifts an array into an expression.
func Of[T tensor.Float, S tensor.Shape](a tensor.Array[T, S]) Expr[T, S] {
	return expr.Of(a)
}

// Evaluate forces e into a concrete array.
func Evaluate[T tensor.Float, S tensor.Shape](e Expr[T, S]) tensor.Array[T, S] {
	return expr.Evaluate(e)
}

// Add returns the lazy element-wise sum a + b.
func Add[T tensor.Float, S tensor.Shape](a, b Expr[T, S]) Expr[T, S] {
	return expr.Add(a, b)
}

// Sub returns the lazy element-wise difference a - b.
func Sub[T tensor.Float, S tensor.Shape](a, b Expr[T, S]) Expr[T, S] {
	return expr.Sub(a, b)
}

// Mul returns the lazy element-wise product.
func Mul[T tensor.Float, S tensor.Shape](a, b Expr[T, S]) Expr[T, S] {
	return expr.Mul(a, b)
}

// Scale returns the lazy product alpha · x.
func Scale[T tensor.Float, S tensor.Shape](alpha T, x Expr[T, S]) Expr[T, S] {
	return expr.Scale(alpha, x)
}

// Neg returns the lazy negation -x.
func Neg[T tensor.Float, S tensor.Shape](x Expr[T, S]) Expr[T, S] {
	return expr.Neg(x)
}

// MatMul returns the lazy matrix product a · b.
func MatMul[T tensor.Float, N tensor.Dim](a, b Expr[T, tensor.Square[N]]) Expr[T, tensor.Square[N]] {
	return expr.MatMul(a, b)
}

// Transpose returns the lazy transpose of x.
func Transpose[T tensor.Float, N tensor.Dim](x Expr[T, tensor.Square[N]]) Expr[T, tensor.Square[N]] {
	return expr.Transpose(x)
}
