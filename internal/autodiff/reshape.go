package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// ReshapeOp changes the shape of a tensor without changing its data.
//
// Backward pass reshapes outputGrad back to the input shape.
type ReshapeOp struct {
	inputs []*Tensor
}

// Name returns "reshape".
func (op *ReshapeOp) Name() string { return "reshape" }

// Inputs returns [x].
func (op *ReshapeOp) Inputs() []*Tensor { return op.inputs }

// Backward reshapes the gradient to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Reshape(outputGrad, op.inputs[0].Shape())}
}

// Reshape returns t with a new shape holding the same number of elements.
// One dimension may be -1, in which case it is inferred.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	target, err := resolveShape(t.Shape(), shape)
	if err != nil {
		return nil, err
	}
	inputs := []*Tensor{t}
	out := t.backend.Reshape(t.raw, target)
	return result(out, t.backend, inputs, func() Function { return &ReshapeOp{inputs: inputs} }), nil
}

// Flatten reshapes t to 2-D, keeping the first axis.
func (t *Tensor) Flatten() (*Tensor, error) {
	if t.Dim() == 0 {
		return nil, tensor.ShapeErrorf("flatten: scalar tensor has no leading axis")
	}
	return t.Reshape(t.Shape()[0], -1)
}

func resolveShape(from tensor.Shape, dims []int) (tensor.Shape, error) {
	target := make(tensor.Shape, len(dims))
	infer := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == -1 && infer >= 0:
			return nil, tensor.ShapeErrorf("reshape: only one dimension can be -1, got %v", dims)
		case d == -1:
			infer = i
		case d < 0:
			return nil, tensor.ShapeErrorf("reshape: invalid dimension %d in %v", d, dims)
		default:
			known *= d
		}
		target[i] = d
	}

	n := from.NumElements()
	if infer >= 0 {
		if known == 0 || n%known != 0 {
			return nil, tensor.ShapeErrorf("reshape: cannot infer -1 for %v from %v", dims, from)
		}
		target[infer] = n / known
	}
	if target.NumElements() != n {
		return nil, tensor.ShapeErrorf("reshape: cannot reshape %v (%d elements) to %v", from, n, target)
	}
	return target, nil
}
