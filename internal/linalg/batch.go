package linalg

import (
	"github.com/born-ml/detkit/internal/kernel"
	"github.com/born-ml/detkit/internal/tensor"
)

// BatchDeterminant computes the determinant of every N×N matrix stacked
// along the batch axes B, using the closed-form kernel.
//
// The result has shape B: slot i holds the determinant of the i-th
// contiguous N×N block of a in row-major order.
//
// Example:
//
//	// [2, 3, 2, 2] -> [2, 3]
//	var a tensor.Array[float64, tensor.Batched[tensor.Axes2[tensor.D2, tensor.D3], tensor.D2]]
//	dets := linalg.BatchDeterminant(a)
func BatchDeterminant[T tensor.Float, B tensor.Shape, N tensor.SmallDim](
	a tensor.Array[T, tensor.Batched[B, N]],
) tensor.Array[T, B] {
	j := tensor.ExtentOf[N]()
	block := j * j
	count := tensor.Batched[B, N]{}.BatchAxes().NumElements()

	out := tensor.Zeros[T, B]()
	src := a.Data()
	dst := out.Data()
	for i := range count {
		dst[i] = kernel.Det(src[i*block:(i+1)*block], j)
	}
	return out
}
