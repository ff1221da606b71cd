// Package factor wraps gonum's QR factorization for flat row-major buffers.
package factor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/detkit/internal/tensor"
)

// QR factorizes the n×n row-major matrix in data as A = Q·R, with Q
// orthogonal and R upper triangular. Both factors are returned as fresh
// row-major buffers; data is not modified.
//
// The factorization is Householder based and does not normalize signs, so
// the diagonal of R may be negated relative to other factorizations and
// det(Q) is either +1 or -1.
func QR[T tensor.Float](data []T, n int) (q, r []T) {
	if n < 1 || len(data) < n*n {
		panic(fmt.Sprintf("factor: %dx%d QR needs %d elements, got %d", n, n, n*n, len(data)))
	}

	a := mat.NewDense(n, n, toFloat64(data[:n*n]))

	var qr mat.QR
	qr.Factorize(a)

	var qd, rd mat.Dense
	qr.QTo(&qd)
	qr.RTo(&rd)

	return fromDense[T](&qd, n), fromDense[T](&rd, n)
}

// DiagProduct multiplies the diagonal of the n×n row-major matrix r in
// index order 0..n-1.
func DiagProduct[T tensor.Float](r []T, n int) T {
	p := T(1)
	for i := 0; i < n; i++ {
		p *= r[i*n+i]
	}
	return p
}

func toFloat64[T tensor.Float](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

func fromDense[T tensor.Float](d *mat.Dense, n int) []T {
	out := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = T(d.At(i, j))
		}
	}
	return out
}
