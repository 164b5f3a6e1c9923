package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// MulOp represents element-wise multiplication: output = a * b.
//
// Backward pass (product rule):
//   - grad_a = outputGrad * b
//   - grad_b = outputGrad * a
type MulOp struct {
	inputs []*Tensor
}

// Name returns "mul".
func (op *MulOp) Name() string { return "mul" }

// Inputs returns [a, b].
func (op *MulOp) Inputs() []*Tensor { return op.inputs }

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	x, y := op.inputs[0], op.inputs[1]
	return []*tensor.RawTensor{
		b.SumTo(b.Mul(outputGrad, y.raw), x.Shape()),
		b.SumTo(b.Mul(outputGrad, x.raw), y.Shape()),
	}
}

// Mul returns t * other element-wise with NumPy broadcasting.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	if err := checkBinary("mul", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Mul(t.raw, other.raw)
	inputs := []*Tensor{t, other}
	return result(out, t.backend, inputs, func() Function { return &MulOp{inputs: inputs} }), nil
}

// MulScalar returns t * s.
func (t *Tensor) MulScalar(s float64) (*Tensor, error) {
	return t.Mul(New(tensor.FullRaw(tensor.Shape{}, s), t.backend))
}

// AddScalar returns t + s.
func (t *Tensor) AddScalar(s float64) (*Tensor, error) {
	return t.Add(New(tensor.FullRaw(tensor.Shape{}, s), t.backend))
}
