package splitengine

import (
	"fmt"

	"gorgonia.org/tensor"
)

// YTensor is the N_total x K1 x K2 x K3 target tensor. The axis count is
// historical: it is one sample axis plus up to three output axes, and the
// inner three axes are always iterated as a single flat loop of length
// K1*K2*K3.
//
// tensor.Dense is used here the way the gradient-boosting driver this
// kernel was pulled out of uses it for its own per-sample statistics
// tensor, but the hot loops never call Dense.At/SetAt: those box every
// element into an interface{} and can allocate, which the split search's
// zero-allocation contract forbids. Sample retrieves the flat []float64
// slab directly instead.
type YTensor struct {
	dense         *tensor.Dense
	flat          []float64
	n, k1, k2, k3 int
	k             int
}

// NewYTensor allocates a zeroed target tensor with shape (n, k1, k2, k3).
func NewYTensor(n, k1, k2, k3 int) *YTensor {
	d := tensor.New(tensor.WithShape(n, k1, k2, k3), tensor.Of(tensor.Float64))
	flat := d.Data().([]float64)
	return &YTensor{dense: d, flat: flat, n: n, k1: k1, k2: k2, k3: k3, k: k1 * k2 * k3}
}

// NewYTensorFromFlat wraps a caller-supplied, already row-major slab of
// length n*k1*k2*k3. The slice is used as-is; no copy is made.
func NewYTensorFromFlat(flat []float64, n, k1, k2, k3 int) (*YTensor, error) {
	k := k1 * k2 * k3
	if len(flat) != n*k {
		return nil, fmt.Errorf("%w: flat target slab has length %d, want %d", ErrInvalidShape, len(flat), n*k)
	}
	d := tensor.New(tensor.WithShape(n, k1, k2, k3), tensor.WithBacking(flat))
	return &YTensor{dense: d, flat: flat, n: n, k1: k1, k2: k2, k3: k3, k: k}, nil
}

// Dims returns the tensor's shape.
func (y *YTensor) Dims() (n, k1, k2, k3 int) { return y.n, y.k1, y.k2, y.k3 }

// OutputWidth returns K1*K2*K3, the number of flattened regression outputs.
func (y *YTensor) OutputWidth() int { return y.k }

// Sample returns the flat K1*K2*K3-length slab of outputs for row i. The
// returned slice aliases the tensor's backing storage.
func (y *YTensor) Sample(i int) []float64 {
	return y.flat[i*y.k : (i+1)*y.k]
}

// ClassOf returns y[i,0,0,0] truncated to an int, the class id a
// classification criterion reads. Classification ignores every other
// output slot.
func (y *YTensor) ClassOf(i int) int {
	return int(y.flat[i*y.k])
}

// Dense exposes the underlying gorgonia tensor for callers that need
// tensor-level operations (e.g. npy I/O, reshaping for a host bridge).
func (y *YTensor) Dense() *tensor.Dense { return y.dense }
