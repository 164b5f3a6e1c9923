package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// Im2Col2DOp gathers the sliding patches of a 4-D input into rows.
//
// Forward:  (bs, c, h, w) → (bs, out_h*out_w, c*kh*kw)
// Backward: col2im, which scatter-adds every row entry back onto the image
// position it came from.
type Im2Col2DOp struct {
	inputs []*Tensor
	kh, kw int
	sh, sw int
}

// Name returns "im2col2d".
func (op *Im2Col2DOp) Name() string { return "im2col2d" }

// Inputs returns [x].
func (op *Im2Col2DOp) Inputs() []*Tensor { return op.inputs }

// Backward folds column gradients back onto the image.
func (op *Im2Col2DOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Col2Im2D(outputGrad, op.inputs[0].Shape(), op.kh, op.kw, op.sh, op.sw)}
}

// Im2Col2D unfolds an already padded (bs, c, h, w) input for a convolution
// with the given kernel size and stride. The result has shape
// (bs, out_h*out_w, c*kh*kw) with
//
//	out_h = (h - kh)/sh + 1
//	out_w = (w - kw)/sw + 1
func (t *Tensor) Im2Col2D(kernel, stride [2]int) (*Tensor, error) {
	shape := t.Shape()
	if len(shape) != 4 {
		return nil, tensor.ShapeErrorf("im2col2d: input must be 4-D (bs, c, h, w), got %v", shape)
	}
	kh, kw := kernel[0], kernel[1]
	sh, sw := stride[0], stride[1]
	if kh <= 0 || kw <= 0 {
		return nil, tensor.ValueErrorf("im2col2d: kernel size must be positive, got %v", kernel)
	}
	if sh <= 0 || sw <= 0 {
		return nil, tensor.ValueErrorf("im2col2d: stride must be positive, got %v", stride)
	}
	if shape[2] < kh || shape[3] < kw {
		return nil, tensor.ShapeErrorf("im2col2d: kernel %dx%d does not fit input %dx%d", kh, kw, shape[2], shape[3])
	}

	out := t.backend.Im2Col2D(t.raw, kh, kw, sh, sw)
	inputs := []*Tensor{t}
	return result(out, t.backend, inputs, func() Function {
		return &Im2Col2DOp{inputs: inputs, kh: kh, kw: kw, sh: sh, sw: sw}
	}), nil
}
