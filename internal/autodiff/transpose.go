package autodiff

import (
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// TransposeOp permutes the axes of a tensor.
//
// Backward pass applies the inverse permutation to outputGrad.
type TransposeOp struct {
	inputs []*Tensor
	axes   []int
}

// Name returns "transpose".
func (op *TransposeOp) Name() string { return "transpose" }

// Inputs returns [x].
func (op *TransposeOp) Inputs() []*Tensor { return op.inputs }

// Backward permutes the gradient back.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Transpose(outputGrad, tensor.InversePermutation(op.axes)...)}
}

// Transpose permutes t's axes. Axes may be negative. With no axes the order
// is reversed.
func (t *Tensor) Transpose(axes ...int) (*Tensor, error) {
	ndim := t.Dim()
	perm := make([]int, ndim)
	if len(axes) == 0 {
		for i := range perm {
			perm[i] = ndim - 1 - i
		}
	} else {
		if len(axes) != ndim {
			return nil, tensor.ShapeErrorf("transpose: expected %d axes for shape %v, got %v", ndim, t.Shape(), axes)
		}
		for i, ax := range axes {
			n, err := tensor.NormalizeAxis(ax, ndim)
			if err != nil {
				return nil, errors.WithMessage(err, "transpose")
			}
			perm[i] = n
		}
		if err := tensor.ValidatePermutation(perm, ndim); err != nil {
			return nil, err
		}
	}

	inputs := []*Tensor{t}
	out := t.backend.Transpose(t.raw, perm...)
	return result(out, t.backend, inputs, func() Function { return &TransposeOp{inputs: inputs, axes: perm} }), nil
}

// SwapAxes exchanges axes i and j.
func (t *Tensor) SwapAxes(i, j int) (*Tensor, error) {
	ndim := t.Dim()
	a, err := tensor.NormalizeAxis(i, ndim)
	if err != nil {
		return nil, errors.WithMessage(err, "swapaxes")
	}
	b, err := tensor.NormalizeAxis(j, ndim)
	if err != nil {
		return nil, errors.WithMessage(err, "swapaxes")
	}
	perm := make([]int, ndim)
	for k := range perm {
		perm[k] = k
	}
	perm[a], perm[b] = perm[b], perm[a]
	return t.Transpose(perm...)
}
