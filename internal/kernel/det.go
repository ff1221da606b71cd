// Package kernel implements closed-form determinants for matrices up to 4×4.
package kernel

import (
	"fmt"

	"github.com/born-ml/detkit/internal/tensor"
)

// MaxSize is the largest extent with a closed-form kernel.
const MaxSize = 4

// Det computes the determinant of the n×n row-major matrix at the start of data.
// Panics if n is outside [1, MaxSize] or data is too short.
func Det[T tensor.Float](data []T, n int) T {
	if n < 1 || n > MaxSize {
		panic(fmt.Sprintf("kernel: no determinant kernel for %dx%d", n, n))
	}
	if len(data) < n*n {
		panic(fmt.Sprintf("kernel: %dx%d determinant needs %d elements, got %d", n, n, n*n, len(data)))
	}

	if useFMA {
		if d, ok := any(data).([]float64); ok {
			return T(detFMA(d, n))
		}
	}

	switch n {
	case 1:
		return data[0]
	case 2:
		return det2(data)
	case 3:
		return det3(data)
	default:
		return det4(data)
	}
}

func det2[T tensor.Float](m []T) T {
	return m[0]*m[3] - m[1]*m[2]
}

// det3 expands along the first row.
func det3[T tensor.Float](m []T) T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// det4 is a Laplace expansion over the 2×2 minors of rows 0-1 and rows 2-3.
func det4[T tensor.Float](m []T) T {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}
