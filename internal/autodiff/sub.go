package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// SubOp represents element-wise subtraction: output = a - b.
//
// Backward pass:
//   - grad_a = outputGrad
//   - grad_b = -outputGrad
//
// Both are summed back to the operand shapes.
type SubOp struct {
	inputs []*Tensor
}

// Name returns "sub".
func (op *SubOp) Name() string { return "sub" }

// Inputs returns [a, b].
func (op *SubOp) Inputs() []*Tensor { return op.inputs }

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		b.SumTo(outputGrad, op.inputs[0].Shape()),
		b.SumTo(b.Neg(outputGrad), op.inputs[1].Shape()),
	}
}

// Sub returns t - other with NumPy broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	if err := checkBinary("sub", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Sub(t.raw, other.raw)
	inputs := []*Tensor{t, other}
	return result(out, t.backend, inputs, func() Function { return &SubOp{inputs: inputs} }), nil
}
