package functional

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// Conv2DConfig holds the hyperparameters of Conv2D.
//
// Zero values select the defaults: stride 1, dilation 1, one group, no
// padding, zero padding mode. Use ParsePair and ParsePadding to build the
// fields from loosely typed arguments.
type Conv2DConfig struct {
	Stride      Pair
	Padding     Padding
	Dilation    Pair
	Groups      int
	PaddingMode PaddingMode
}

// normalized fills defaults and validates every field.
func (c Conv2DConfig) normalized() (Conv2DConfig, error) {
	if c.Stride == (Pair{}) {
		c.Stride = Pair{1, 1}
	}
	if c.Dilation == (Pair{}) {
		c.Dilation = Pair{1, 1}
	}
	if c.Groups == 0 {
		c.Groups = 1
	}
	if c.Stride[0] <= 0 || c.Stride[1] <= 0 {
		return c, tensor.ValueErrorf("conv2d: stride must be positive, got %v", c.Stride)
	}
	if c.Dilation[0] <= 0 || c.Dilation[1] <= 0 {
		return c, tensor.ValueErrorf("conv2d: dilation must be positive, got %v", c.Dilation)
	}
	if c.Groups < 0 {
		return c, tensor.ValueErrorf("conv2d: groups must be positive, got %d", c.Groups)
	}
	if !c.Padding.Valid() {
		return c, tensor.ValueErrorf("conv2d: padding must be non-negative, got %v", c.Padding)
	}
	if !c.PaddingMode.Valid() {
		return c, tensor.ValueErrorf("conv2d: unknown padding mode %v", c.PaddingMode)
	}
	if c.Dilation != (Pair{1, 1}) {
		return c, tensor.NotImplementedf("conv2d: dilation %v is not supported", c.Dilation)
	}
	if c.Groups != 1 {
		return c, tensor.NotImplementedf("conv2d: groups=%d is not supported", c.Groups)
	}
	return c, nil
}

// Validate reports the error Conv2D would return for c before looking at
// any tensor.
func (c Conv2DConfig) Validate() error {
	_, err := c.normalized()
	return err
}

// ConvOutputSize returns the output length of one spatial axis:
//
//	floor((in + padBefore + padAfter - dilation*(kernel-1) - 1) / stride + 1)
func ConvOutputSize(in, kernel, padBefore, padAfter, stride, dilation int) int {
	span := in + padBefore + padAfter - dilation*(kernel-1) - 1
	if span < 0 {
		return 0
	}
	return span/stride + 1
}

// Conv2D computes a 2-D cross-correlation.
//
// Shapes:
//
//	x:      (bs, ch_i, h_i, w_i)
//	weight: (ch_o, ch_i, kh, kw)
//	bias:   (ch_o) or nil
//	out:    (bs, ch_o, h_o, w_o)
//
// The input is padded, unfolded with im2col into (bs, h_o*w_o, ch_i*kh*kw),
// and multiplied by the weight flattened to (ch_o, ch_i*kh*kw):
//
//	out = (weight.reshape(ch_o, K) @ colᵀ).reshape(bs, ch_o, h_o, w_o) + bias
func Conv2D(x, weight, bias *autodiff.Tensor, cfg Conv2DConfig) (*autodiff.Tensor, error) {
	if x == nil || weight == nil {
		return nil, tensor.ValueErrorf("conv2d: input and weight are required")
	}
	if x.Dim() != 4 {
		return nil, tensor.ShapeErrorf("conv2d: input must be 4-D (bs, ch_i, h, w), got shape %v", x.Shape())
	}
	if weight.Dim() != 4 {
		return nil, tensor.ShapeErrorf("conv2d: weight must be 4-D (ch_o, ch_i, kh, kw), got shape %v", weight.Shape())
	}
	bs, chI, hI, wI := x.Shape()[0], x.Shape()[1], x.Shape()[2], x.Shape()[3]
	chO, wChI, kh, kw := weight.Shape()[0], weight.Shape()[1], weight.Shape()[2], weight.Shape()[3]
	if wChI != chI {
		return nil, tensor.ShapeErrorf("conv2d: weight expects %d input channels, input has %d", wChI, chI)
	}
	if bias != nil {
		if bias.Dim() != 1 {
			return nil, tensor.ShapeErrorf("conv2d: bias must be 1-D, got shape %v", bias.Shape())
		}
		if bias.Shape()[0] != chO {
			return nil, tensor.ShapeErrorf("conv2d: bias has %d elements for %d output channels", bias.Shape()[0], chO)
		}
	}

	cfg, err := cfg.normalized()
	if err != nil {
		return nil, err
	}
	pad := cfg.Padding
	hO := ConvOutputSize(hI, kh, pad[0][0], pad[0][1], cfg.Stride[0], cfg.Dilation[0])
	wO := ConvOutputSize(wI, kw, pad[1][0], pad[1][1], cfg.Stride[1], cfg.Dilation[1])
	if kh == 0 || kw == 0 || hO <= 0 || wO <= 0 {
		return nil, tensor.ShapeErrorf("conv2d: kernel %dx%d does not fit input %dx%d padded by %v", kh, kw, hI, wI, pad)
	}

	padded, err := Padding2D(x, pad, cfg.PaddingMode)
	if err != nil {
		return nil, err
	}
	col, err := padded.Im2Col2D([2]int{kh, kw}, cfg.Stride)
	if err != nil {
		return nil, err
	}
	colT, err := col.SwapAxes(1, 2) // (bs, K, h_o*w_o)
	if err != nil {
		return nil, err
	}
	w2, err := weight.Reshape(chO, chI*kh*kw)
	if err != nil {
		return nil, err
	}
	prod, err := w2.MatMul(colT) // (bs, ch_o, h_o*w_o)
	if err != nil {
		return nil, err
	}
	out, err := prod.Reshape(bs, chO, hO, wO)
	if err != nil {
		return nil, err
	}
	if bias == nil {
		return out, nil
	}
	b4, err := bias.Reshape(1, chO, 1, 1)
	if err != nil {
		return nil, err
	}
	return out.Add(b4)
}

// Padding2D pads the two spatial axes of a (bs, ch, h, w) tensor.
//
// Modes map onto array padding as zeros → constant 0, reflect → mirror
// without the edge, replicate → repeat the edge, circular → mirror with the
// edge. A zero padding returns x unchanged.
func Padding2D(x *autodiff.Tensor, padding Padding, mode PaddingMode) (*autodiff.Tensor, error) {
	pm, err := mode.padMode()
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, tensor.ValueErrorf("padding2d: input is required")
	}
	if x.Dim() != 4 {
		return nil, tensor.ShapeErrorf("padding2d: input must be 4-D (bs, ch, h, w), got shape %v", x.Shape())
	}
	for _, side := range padding {
		if side[0] < 0 || side[1] < 0 {
			return nil, tensor.ValueErrorf("padding2d: padding must be non-negative, got %v", padding)
		}
	}
	if padding.IsZero() {
		return x, nil
	}
	return x.Pad([][2]int{{0, 0}, {0, 0}, padding[0], padding[1]}, pm)
}
