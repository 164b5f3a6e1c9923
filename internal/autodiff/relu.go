package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// ReLUOp represents the rectified linear unit: output = max(0, x).
//
// Backward pass:
//   - grad_x = outputGrad * (x > 0)
type ReLUOp struct {
	inputs []*Tensor
}

// Name returns "relu".
func (op *ReLUOp) Name() string { return "relu" }

// Inputs returns [x].
func (op *ReLUOp) Inputs() []*Tensor { return op.inputs }

// Backward masks the gradient where the input was not positive.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Mul(outputGrad, b.ReLUMask(op.inputs[0].raw))}
}

// ReLU applies max(0, x) element-wise.
func (t *Tensor) ReLU() *Tensor {
	inputs := []*Tensor{t}
	return result(t.backend.ReLU(t.raw), t.backend, inputs, func() Function { return &ReLUOp{inputs: inputs} })
}
