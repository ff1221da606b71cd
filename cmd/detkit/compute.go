package main

import (
	"fmt"

	"github.com/born-ml/detkit/expr"
	"github.com/born-ml/detkit/linalg"
	"github.com/born-ml/detkit/tensor"
)

type job struct {
	data     []float64
	n        int
	strategy linalg.Strategy
}

type result struct {
	det, absDet, logDet float64
}

// compute instantiates the typed API at the dimension type matching j.n.
func compute(j job) (result, error) {
	switch j.strategy {
	case linalg.DirectKernel:
		switch j.n {
		case 1:
			return viaKernel[tensor.D1](j.data)
		case 2:
			return viaKernel[tensor.D2](j.data)
		case 3:
			return viaKernel[tensor.D3](j.data)
		case 4:
			return viaKernel[tensor.D4](j.data)
		}
	case linalg.Factorization:
		switch j.n {
		case 1:
			return viaQR[tensor.D1](j.data)
		case 2:
			return viaQR[tensor.D2](j.data)
		case 3:
			return viaQR[tensor.D3](j.data)
		case 4:
			return viaQR[tensor.D4](j.data)
		case 5:
			return viaQR[tensor.D5](j.data)
		case 6:
			return viaQR[tensor.D6](j.data)
		case 7:
			return viaQR[tensor.D7](j.data)
		case 8:
			return viaQR[tensor.D8](j.data)
		}
	}
	return result{}, fmt.Errorf("no %s instantiation for %dx%d", j.strategy, j.n, j.n)
}

func viaKernel[N tensor.SmallDim](data []float64) (result, error) {
	m, err := tensor.FromSlice[float64, tensor.Square[N]](data)
	if err != nil {
		return result{}, err
	}
	e := expr.Of(m)
	return result{det: linalg.Det(e), absDet: linalg.AbsDet(e), logDet: linalg.LogDet(e)}, nil
}

func viaQR[N tensor.Dim](data []float64) (result, error) {
	m, err := tensor.FromSlice[float64, tensor.Square[N]](data)
	if err != nil {
		return result{}, err
	}
	e := expr.Of(m)
	return result{det: linalg.DetQR(e), absDet: linalg.AbsDetQR(e), logDet: linalg.LogDetQR(e)}, nil
}
