package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// PadOp pads every axis of a tensor.
//
// Backward pass crops outputGrad to the input region and, for the mirroring
// and replicating modes, folds border gradients back onto the elements they
// were copied from.
type PadOp struct {
	inputs []*Tensor
	widths [][2]int
	mode   tensor.PadMode
}

// Name returns "pad".
func (op *PadOp) Name() string { return "pad" }

// Inputs returns [x].
func (op *PadOp) Inputs() []*Tensor { return op.inputs }

// Backward computes the adjoint of the padding.
func (op *PadOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.PadBackward(outputGrad, op.inputs[0].Shape(), op.widths, op.mode)}
}

// Pad pads axis i of t by widths[i] = {before, after} elements.
// Modes follow np.pad; mirrored modes wider than the axis repeat periodically.
func (t *Tensor) Pad(widths [][2]int, mode tensor.PadMode) (*Tensor, error) {
	shape := t.Shape()
	if len(widths) != len(shape) {
		return nil, tensor.ShapeErrorf("pad: got %d widths for shape %v", len(widths), shape)
	}
	if !mode.Valid() {
		return nil, tensor.ValueErrorf("pad: unknown mode %d", mode)
	}
	for i, w := range widths {
		if w[0] < 0 || w[1] < 0 {
			return nil, tensor.ValueErrorf("pad: negative width %v on axis %d", w, i)
		}
		if w[0]+w[1] == 0 || mode == tensor.PadConstant {
			continue
		}
		if shape[i] == 0 {
			return nil, tensor.ShapeErrorf("pad: cannot %s-pad empty axis %d", mode, i)
		}
	}

	ws := make([][2]int, len(widths))
	copy(ws, widths)
	inputs := []*Tensor{t}
	out := t.backend.Pad(t.raw, ws, mode)
	return result(out, t.backend, inputs, func() Function { return &PadOp{inputs: inputs, widths: ws, mode: mode} }), nil
}
