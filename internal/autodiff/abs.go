package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// AbsOp represents the absolute value.
//
// Backward pass:
//   - grad_x = outputGrad * sign(x), with sign(0) = 0
type AbsOp struct {
	inputs []*Tensor
}

// Name returns "abs".
func (op *AbsOp) Name() string { return "abs" }

// Inputs returns [x].
func (op *AbsOp) Inputs() []*Tensor { return op.inputs }

// Backward multiplies the gradient by the sign of the input.
func (op *AbsOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Mul(outputGrad, b.Sign(op.inputs[0].raw))}
}

// Abs returns |t| element-wise.
func (t *Tensor) Abs() *Tensor {
	inputs := []*Tensor{t}
	return result(t.backend.Abs(t.raw), t.backend, inputs, func() Function { return &AbsOp{inputs: inputs} })
}
