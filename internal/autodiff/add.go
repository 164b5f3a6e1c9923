package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// AddOp represents element-wise addition: output = a + b.
//
// Backward pass:
//   - grad_a = outputGrad, summed back to a's shape
//   - grad_b = outputGrad, summed back to b's shape
type AddOp struct {
	inputs []*Tensor
}

// Name returns "add".
func (op *AddOp) Name() string { return "add" }

// Inputs returns [a, b].
func (op *AddOp) Inputs() []*Tensor { return op.inputs }

// Backward computes input gradients for addition.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		b.SumTo(outputGrad, op.inputs[0].Shape()),
		b.SumTo(outputGrad, op.inputs[1].Shape()),
	}
}

// Add returns t + other with NumPy broadcasting.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if err := checkBinary("add", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Add(t.raw, other.raw)
	inputs := []*Tensor{t, other}
	return result(out, t.backend, inputs, func() Function { return &AddOp{inputs: inputs} }), nil
}
