package autodiff

import (
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// SoftmaxOp normalizes exponentials along one axis:
// output_i = exp(x_i) / Σ_j exp(x_j).
//
// Backward pass (vector-Jacobian product of the softmax Jacobian):
//   - grad_x = s * (outputGrad - Σ(outputGrad * s))
//
// where s is the cached output and the sum runs along the same axis.
type SoftmaxOp struct {
	inputs []*Tensor
	output *tensor.RawTensor
	axis   int
}

// Name returns "softmax".
func (op *SoftmaxOp) Name() string { return "softmax" }

// Inputs returns [x].
func (op *SoftmaxOp) Inputs() []*Tensor { return op.inputs }

// Backward computes the softmax vector-Jacobian product.
func (op *SoftmaxOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.SoftmaxBackward(op.output, outputGrad, op.axis)}
}

// Softmax applies softmax along axis. Negative axes count from the end.
func (t *Tensor) Softmax(axis int) (*Tensor, error) {
	ax, err := tensor.NormalizeAxis(axis, t.Dim())
	if err != nil {
		return nil, errors.WithMessage(err, "softmax")
	}
	out := t.backend.Softmax(t.raw, ax)
	inputs := []*Tensor{t}
	return result(out, t.backend, inputs, func() Function { return &SoftmaxOp{inputs: inputs, output: out, axis: ax} }), nil
}
