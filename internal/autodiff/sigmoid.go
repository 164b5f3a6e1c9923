package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// SigmoidOp represents the logistic function: output = 1 / (1 + exp(-x)).
//
// Backward pass:
//   - grad_x = outputGrad * σ(x) * (1 - σ(x))
//
// The forward output is cached so backward does not recompute it.
type SigmoidOp struct {
	inputs []*Tensor
	output *tensor.RawTensor
}

// Name returns "sigmoid".
func (op *SigmoidOp) Name() string { return "sigmoid" }

// Inputs returns [x].
func (op *SigmoidOp) Inputs() []*Tensor { return op.inputs }

// Backward computes the sigmoid gradient from the cached output.
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	oneMinus := b.AddScalar(b.Neg(op.output), 1)
	return []*tensor.RawTensor{b.Mul(outputGrad, b.Mul(op.output, oneMinus))}
}

// Sigmoid applies the logistic function element-wise.
func (t *Tensor) Sigmoid() *Tensor {
	out := t.backend.Sigmoid(t.raw)
	inputs := []*Tensor{t}
	return result(out, t.backend, inputs, func() Function { return &SigmoidOp{inputs: inputs, output: out} })
}
