package autodiff

import (
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// SumOp reduces a tensor by summation (or averaging) over a set of axes.
//
// Backward pass broadcasts outputGrad back over the reduced axes; for the
// mean the result is additionally scaled by 1/count.
type SumOp struct {
	inputs  []*Tensor
	kept    tensor.Shape // input shape with reduced axes set to 1
	scale   float64
	average bool
}

// Name returns "sum" or "mean".
func (op *SumOp) Name() string {
	if op.average {
		return "mean"
	}
	return "sum"
}

// Inputs returns [x].
func (op *SumOp) Inputs() []*Tensor { return op.inputs }

// Backward spreads the gradient over the reduced axes.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	g := b.BroadcastTo(b.Reshape(outputGrad, op.kept), op.inputs[0].Shape())
	if op.average {
		g = b.MulScalar(g, op.scale)
	}
	return []*tensor.RawTensor{g}
}

// Sum reduces every element to a 0-D scalar.
func (t *Tensor) Sum() (*Tensor, error) {
	return t.reduce(nil, false, false)
}

// Mean averages every element into a 0-D scalar.
func (t *Tensor) Mean() (*Tensor, error) {
	return t.reduce(nil, false, true)
}

// SumDim sums over one axis. Negative axes count from the end.
func (t *Tensor) SumDim(dim int, keepDim bool) (*Tensor, error) {
	return t.reduce([]int{dim}, keepDim, false)
}

// MeanDim averages over one axis. Negative axes count from the end.
func (t *Tensor) MeanDim(dim int, keepDim bool) (*Tensor, error) {
	return t.reduce([]int{dim}, keepDim, true)
}

// SumAxes sums over several axes. An empty list reduces every axis.
func (t *Tensor) SumAxes(axes []int, keepDim bool) (*Tensor, error) {
	return t.reduce(axes, keepDim, false)
}

func (t *Tensor) reduce(axes []int, keepDim, average bool) (*Tensor, error) {
	name := "sum"
	if average {
		name = "mean"
	}
	shape := t.Shape()
	kept := shape.Clone()
	norm := make([]int, 0, len(axes))
	if len(axes) == 0 {
		for i := range kept {
			kept[i] = 1
			norm = append(norm, i)
		}
	}
	for _, ax := range axes {
		n, err := tensor.NormalizeAxis(ax, len(shape))
		if err != nil {
			return nil, errors.WithMessage(err, name)
		}
		if kept[n] == 1 && shape[n] != 1 {
			return nil, tensor.ShapeErrorf("%s: axis %d given twice in %v", name, ax, axes)
		}
		kept[n] = 1
		norm = append(norm, n)
	}

	out := t.backend.Sum(t.raw, norm, keepDim)
	count := shape.NumElements() / max(kept.NumElements(), 1)
	scale := 1 / float64(count)
	if average {
		out = t.backend.MulScalar(out, scale)
	}

	inputs := []*Tensor{t}
	return result(out, t.backend, inputs, func() Function {
		return &SumOp{inputs: inputs, kept: kept, scale: scale, average: average}
	}), nil
}
