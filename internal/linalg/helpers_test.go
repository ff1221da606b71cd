package linalg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/detkit/internal/tensor"
)

// cofactor computes a determinant by recursive Laplace expansion.
func cofactor(m []float64, n int) float64 {
	if n == 1 {
		return m[0]
	}
	var det float64
	sign := 1.0
	minor := make([]float64, (n-1)*(n-1))
	for col := 0; col < n; col++ {
		k := 0
		for i := 1; i < n; i++ {
			for j := 0; j < n; j++ {
				if j != col {
					minor[k] = m[i*n+j]
					k++
				}
			}
		}
		det += sign * m[col] * cofactor(minor, n-1)
		sign = -sign
	}
	return det
}

// gonumDet is an independent LU-based reference.
func gonumDet(m []float64, n int) float64 {
	return mat.Det(mat.NewDense(n, n, append([]float64(nil), m...)))
}

func matrix[N tensor.Dim](t *testing.T, data ...float64) tensor.Matrix[float64, N] {
	t.Helper()
	m, err := tensor.FromSlice[float64, tensor.Square[N]](data)
	require.NoError(t, err)
	return m
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
