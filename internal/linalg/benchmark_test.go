package linalg

import (
	"testing"

	"github.com/born-ml/detkit/internal/expr"
	"github.com/born-ml/detkit/internal/tensor"
)

var sink float64

func BenchmarkDeterminant(b *testing.B) {
	rng := newRand()
	m2 := tensor.Rand[float64, tensor.Square[tensor.D2]](rng)
	m3 := tensor.Rand[float64, tensor.Square[tensor.D3]](rng)
	m4 := tensor.Rand[float64, tensor.Square[tensor.D4]](rng)

	b.Run("2x2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = Determinant(m2)
		}
	})

	b.Run("3x3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = Determinant(m3)
		}
	})

	b.Run("4x4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = Determinant(m4)
		}
	})

	b.Run("4x4-qr", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = DeterminantQR(m4)
		}
	})
}

func BenchmarkBatchDeterminant(b *testing.B) {
	type shape = tensor.Batched[tensor.Axes2[tensor.D8, tensor.D8], tensor.D3]
	a := tensor.Rand[float64, shape](newRand())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := BatchDeterminant(a)
		sink = out.Data()[0]
	}
}

func BenchmarkDetExpression(b *testing.B) {
	rng := newRand()
	a := tensor.Rand[float64, tensor.Square[tensor.D4]](rng)
	c := tensor.Rand[float64, tensor.Square[tensor.D4]](rng)
	e := expr.Add(expr.MatMul(expr.Of(a), expr.Of(c)), expr.Of(a))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = Det(e)
	}
}
