package autodiff

import (
	"math"

	"github.com/dpln-ml/dpln/internal/tensor"
)

// PowOp raises each element to a constant power: output = x^p.
//
// Backward pass:
//   - grad_x = outputGrad * p * x^(p-1)
//
// p == 0 yields a zero gradient instead of 0 * x^-1, which is NaN at x = 0.
type PowOp struct {
	inputs []*Tensor
	p      float64
}

// Name returns "pow".
func (op *PowOp) Name() string { return "pow" }

// Inputs returns [x].
func (op *PowOp) Inputs() []*Tensor { return op.inputs }

// Backward computes the power-rule gradient.
func (op *PowOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	if op.p == 0 {
		return []*tensor.RawTensor{tensor.MustRaw(x.Shape())}
	}
	local := b.MulScalar(b.Pow(x.raw, op.p-1), op.p)
	return []*tensor.RawTensor{b.Mul(outputGrad, local)}
}

// Pow returns t raised element-wise to p.
func (t *Tensor) Pow(p float64) (*Tensor, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, tensor.ValueErrorf("pow: exponent must be finite, got %g", p)
	}
	inputs := []*Tensor{t}
	out := t.backend.Pow(t.raw, p)
	return result(out, t.backend, inputs, func() Function { return &PowOp{inputs: inputs, p: p} }), nil
}
