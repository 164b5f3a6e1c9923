package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// DivOp represents element-wise division: output = a / b.
//
// Backward pass (quotient rule):
//   - grad_a = outputGrad / b
//   - grad_b = -outputGrad * a / b²
type DivOp struct {
	inputs []*Tensor
}

// Name returns "div".
func (op *DivOp) Name() string { return "div" }

// Inputs returns [a, b].
func (op *DivOp) Inputs() []*Tensor { return op.inputs }

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	x, y := op.inputs[0], op.inputs[1]
	gradX := b.Div(outputGrad, y.raw)
	gradY := b.Neg(b.Div(b.Mul(outputGrad, x.raw), b.Mul(y.raw, y.raw)))
	return []*tensor.RawTensor{
		b.SumTo(gradX, x.Shape()),
		b.SumTo(gradY, y.Shape()),
	}
}

// Div returns t / other element-wise with NumPy broadcasting.
// Division by zero follows IEEE 754.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	if err := checkBinary("div", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Div(t.raw, other.raw)
	inputs := []*Tensor{t, other}
	return result(out, t.backend, inputs, func() Function { return &DivOp{inputs: inputs} }), nil
}
