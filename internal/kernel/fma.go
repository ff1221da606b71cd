package kernel

import "math"

// dop returns a*b - c*d with a single rounding error (Kahan's algorithm).
func dop(a, b, c, d float64) float64 {
	w := c * d
	e := math.FMA(-c, d, w)
	f := math.FMA(a, b, -w)
	return f + e
}

func detFMA(m []float64, n int) float64 {
	switch n {
	case 1:
		return m[0]
	case 2:
		return dop(m[0], m[3], m[1], m[2])
	case 3:
		c0 := dop(m[4], m[8], m[5], m[7])
		c1 := dop(m[3], m[8], m[5], m[6])
		c2 := dop(m[3], m[7], m[4], m[6])
		return math.FMA(m[2], c2, dop(m[0], c0, m[1], c1))
	default:
		s0 := dop(m[0], m[5], m[4], m[1])
		s1 := dop(m[0], m[6], m[4], m[2])
		s2 := dop(m[0], m[7], m[4], m[3])
		s3 := dop(m[1], m[6], m[5], m[2])
		s4 := dop(m[1], m[7], m[5], m[3])
		s5 := dop(m[2], m[7], m[6], m[3])

		c5 := dop(m[10], m[15], m[14], m[11])
		c4 := dop(m[9], m[15], m[13], m[11])
		c3 := dop(m[9], m[14], m[13], m[10])
		c2 := dop(m[8], m[15], m[12], m[11])
		c1 := dop(m[8], m[14], m[12], m[10])
		c0 := dop(m[8], m[13], m[12], m[9])

		return dop(s0, c5, s1, c4) + dop(s2, c3, -s3, c2) + dop(s5, c0, s4, c1)
	}
}
