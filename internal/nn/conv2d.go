package nn

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/nn/functional"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// Conv2DConfig describes a 2D convolutional layer.
//
// Zero values select defaults: 1x1 stride, no padding, zero padding mode.
type Conv2DConfig struct {
	InChannels  int
	OutChannels int
	KernelSize  functional.Pair
	Stride      functional.Pair
	Padding     functional.Padding
	PaddingMode functional.PaddingMode
	NoBias      bool
}

// Conv2D is a 2D convolutional layer.
//
// Input shape:  [batch, in_channels, height, width]
// Weight shape: [out_channels, in_channels, kernel_h, kernel_w]
// Bias shape:   [out_channels]
// Output shape: [batch, out_channels, out_h, out_w]
//
// Where:
//
//	out_h = (height + pad_top + pad_bottom - kernel_h) / stride_h + 1
//	out_w = (width + pad_left + pad_right - kernel_w) / stride_w + 1
//
// Example:
//
//	conv, err := nn.NewConv2D(nn.Conv2DConfig{
//	    InChannels: 1, OutChannels: 6, KernelSize: functional.Pair{5, 5},
//	})
//	output, err := conv.Forward(input) // [32, 6, 24, 24] for [32, 1, 28, 28]
type Conv2D struct {
	cfg    functional.Conv2DConfig
	inCh   int
	outCh  int
	kernel functional.Pair

	weight *Parameter // [out_channels, in_channels, kernel_h, kernel_w]
	bias   *Parameter // [out_channels] or nil
}

// NewConv2D creates a 2D convolutional layer with Xavier initialization.
//
// Initialization:
//   - Weights: Xavier/Glorot uniform with
//     fan_in = in_channels * kernel_h * kernel_w and
//     fan_out = out_channels * kernel_h * kernel_w
//   - Bias: Zeros
func NewConv2D(cfg Conv2DConfig) (*Conv2D, error) {
	if cfg.InChannels <= 0 || cfg.OutChannels <= 0 {
		return nil, tensor.ValueErrorf("conv2d: invalid channels in=%d, out=%d", cfg.InChannels, cfg.OutChannels)
	}
	kh, kw := cfg.KernelSize[0], cfg.KernelSize[1]
	if kh <= 0 || kw <= 0 {
		return nil, tensor.ValueErrorf("conv2d: invalid kernel size %v", cfg.KernelSize)
	}
	fcfg := functional.Conv2DConfig{
		Stride:      cfg.Stride,
		Padding:     cfg.Padding,
		PaddingMode: cfg.PaddingMode,
	}
	if fcfg.Stride == (functional.Pair{}) {
		fcfg.Stride = functional.Pair{1, 1}
	}
	if err := fcfg.Validate(); err != nil {
		return nil, err
	}

	shape := tensor.Shape{cfg.OutChannels, cfg.InChannels, kh, kw}
	c := &Conv2D{
		cfg:    fcfg,
		inCh:   cfg.InChannels,
		outCh:  cfg.OutChannels,
		kernel: cfg.KernelSize,
		weight: NewParameter("conv2d.weight", Xavier(cfg.InChannels*kh*kw, cfg.OutChannels*kh*kw, shape)),
	}
	if !cfg.NoBias {
		c.bias = NewParameter("conv2d.bias", Zeros(tensor.Shape{cfg.OutChannels}))
	}
	return c, nil
}

// Forward performs the convolution.
//
// Input: [batch, in_channels, height, width]
// Output: [batch, out_channels, out_h, out_w].
func (c *Conv2D) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	var b *autodiff.Tensor
	if c.bias != nil {
		b = c.bias.Tensor()
	}
	return functional.Conv2D(input, c.weight.Tensor(), b, c.cfg)
}

// Parameters returns all trainable parameters.
func (c *Conv2D) Parameters() []*Parameter {
	if c.bias != nil {
		return []*Parameter{c.weight, c.bias}
	}
	return []*Parameter{c.weight}
}

// Weight returns the weight parameter.
func (c *Conv2D) Weight() *Parameter {
	return c.weight
}

// Bias returns the bias parameter, or nil.
func (c *Conv2D) Bias() *Parameter {
	return c.bias
}

// InChannels returns the number of input channels.
func (c *Conv2D) InChannels() int {
	return c.inCh
}

// OutChannels returns the number of output channels.
func (c *Conv2D) OutChannels() int {
	return c.outCh
}

// KernelSize returns the kernel size [height, width].
func (c *Conv2D) KernelSize() functional.Pair {
	return c.kernel
}

// ComputeOutputSize computes output spatial dimensions for given input size.
//
// Returns: [out_height, out_width].
func (c *Conv2D) ComputeOutputSize(inputH, inputW int) [2]int {
	p := c.cfg.Padding
	return [2]int{
		functional.ConvOutputSize(inputH, c.kernel[0], p[0][0], p[0][1], c.cfg.Stride[0], 1),
		functional.ConvOutputSize(inputW, c.kernel[1], p[1][0], p[1][1], c.cfg.Stride[1], 1),
	}
}

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(in_channels=%d, out_channels=%d, kernel_size=(%d, %d), stride=(%d, %d), padding=%v, padding_mode=%v, bias=%v)",
		c.inCh, c.outCh, c.kernel[0], c.kernel[1], c.cfg.Stride[0], c.cfg.Stride[1],
		c.cfg.Padding, c.cfg.PaddingMode, c.bias != nil)
}
