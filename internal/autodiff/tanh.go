package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// TanhOp represents the hyperbolic tangent.
//
// Backward pass:
//   - grad_x = outputGrad * (1 - tanh²(x))
type TanhOp struct {
	inputs []*Tensor
	output *tensor.RawTensor
}

// Name returns "tanh".
func (op *TanhOp) Name() string { return "tanh" }

// Inputs returns [x].
func (op *TanhOp) Inputs() []*Tensor { return op.inputs }

// Backward computes the tanh gradient from the cached output.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	local := b.AddScalar(b.Neg(b.Mul(op.output, op.output)), 1)
	return []*tensor.RawTensor{b.Mul(outputGrad, local)}
}

// Tanh applies tanh element-wise.
func (t *Tensor) Tanh() *Tensor {
	out := t.backend.Tanh(t.raw)
	inputs := []*Tensor{t}
	return result(out, t.backend, inputs, func() Function { return &TanhOp{inputs: inputs, output: out} })
}
