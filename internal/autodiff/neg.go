package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// NegOp represents negation: output = -x.
type NegOp struct {
	inputs []*Tensor
}

// Name returns "neg".
func (op *NegOp) Name() string { return "neg" }

// Inputs returns [x].
func (op *NegOp) Inputs() []*Tensor { return op.inputs }

// Backward returns -outputGrad.
func (op *NegOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Neg(outputGrad)}
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	inputs := []*Tensor{t}
	return result(t.backend.Neg(t.raw), t.backend, inputs, func() Function { return &NegOp{inputs: inputs} })
}
