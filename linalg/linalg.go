// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/detkit/expr"
	"github.com/born-ml/detkit/internal/kernel"
	internallinalg "github.com/born-ml/detkit/internal/linalg"
	"github.com/born-ml/detkit/tensor"
)

// Policy selects the algorithm that computes a determinant at run time.
type Policy = internallinalg.Policy

// Algorithm policies.
const (
	Simple Policy = internallinalg.Simple
	QR     Policy = internallinalg.QR
	RREF   Policy = internallinalg.RREF
)

// Strategy is the computation path a policy resolves to for a given size.
type Strategy = internallinalg.Strategy

// Strategies.
const (
	Unsupported   Strategy = internallinalg.Unsupported
	DirectKernel  Strategy = internallinalg.DirectKernel
	Factorization Strategy = internallinalg.Factorization
)

// Sentinel errors.
var (
	ErrUnsupported   = internallinalg.ErrUnsupported
	ErrUnknownPolicy = internallinalg.ErrUnknownPolicy
)

// ParsePolicy maps a case-insensitive name ("simple", "qr", "rref") to a Policy.
func ParsePolicy(name string) (Policy, error) {
	return internallinalg.ParsePolicy(name)
}

// Resolve returns the strategy for an n×n determinant under p, or
// ErrUnsupported.
func Resolve(p Policy, n int) (Strategy, error) {
	return internallinalg.Resolve(p, n)
}

// Determinant computes det(m) with the closed-form kernel.
func Determinant[T tensor.Float, N tensor.SmallDim](m tensor.Matrix[T, N]) T {
	return internallinalg.Determinant(m)
}

// DeterminantQR computes det(m) from the diagonal of R in a QR factorization.
// The magnitude equals Determinant; the sign may differ.
func DeterminantQR[T tensor.Float, N tensor.Dim](m tensor.Matrix[T, N]) T {
	return internallinalg.DeterminantQR(m)
}

// BatchDeterminant computes the determinant of every N×N matrix along the
// batch axes B. The result has shape B.
func BatchDeterminant[T tensor.Float, B tensor.Shape, N tensor.SmallDim](
	a tensor.Array[T, tensor.Batched[B, N]],
) tensor.Array[T, B] {
	return internallinalg.BatchDeterminant(a)
}

// Det evaluates e and returns its determinant.
func Det[T tensor.Float, N tensor.SmallDim](e expr.Expr[T, tensor.Square[N]]) T {
	return internallinalg.Det(e)
}

// AbsDet evaluates e and returns |det(e)|.
func AbsDet[T tensor.Float, N tensor.SmallDim](e expr.Expr[T, tensor.Square[N]]) T {
	return internallinalg.AbsDet(e)
}

// LogDet evaluates e and returns log|det(e)|.
//
// The sign of the determinant is not recoverable from the result. A singular
// matrix yields -Inf.
func LogDet[T tensor.Float, N tensor.SmallDim](e expr.Expr[T, tensor.Square[N]]) T {
	return internallinalg.LogDet(e)
}

// DetQR evaluates e and returns its determinant using the QR policy.
func DetQR[T tensor.Float, N tensor.Dim](e expr.Expr[T, tensor.Square[N]]) T {
	return internallinalg.DetQR(e)
}

// AbsDetQR evaluates e and returns |det(e)| using the QR policy.
func AbsDetQR[T tensor.Float, N tensor.Dim](e expr.Expr[T, tensor.Square[N]]) T {
	return internallinalg.AbsDetQR(e)
}

// LogDetQR evaluates e and returns log|det(e)| using the QR policy.
func LogDetQR[T tensor.Float, N tensor.Dim](e expr.Expr[T, tensor.Square[N]]) T {
	return internallinalg.LogDetQR(e)
}

// KernelVariant reports which closed-form kernel is active: "fma" when the
// CPU has fused multiply-add (and DETKIT_NO_FMA is unset), else "scalar".
func KernelVariant() string {
	return kernel.Variant()
}
