package nn

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/nn/functional"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU()
//	output, _ := relu.Forward(input) // All negative values become 0
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	return functional.ReLU(input), nil
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies the logistic function.
func (s *Sigmoid) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	return functional.Sigmoid(input), nil
}

// Parameters returns an empty slice.
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// Tanh is a hyperbolic tangent activation module.
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh element-wise.
func (t *Tanh) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	return functional.Tanh(input), nil
}

// Parameters returns an empty slice.
func (t *Tanh) Parameters() []*Parameter {
	return nil
}

// Softmax normalizes its input along one axis.
type Softmax struct {
	axis int
}

// NewSoftmax creates a Softmax over axis; -1 is the last axis.
func NewSoftmax(axis int) *Softmax {
	return &Softmax{axis: axis}
}

// Forward applies softmax.
func (s *Softmax) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	return functional.Softmax(input, s.axis)
}

// Parameters returns an empty slice.
func (s *Softmax) Parameters() []*Parameter {
	return nil
}

// Flatten reshapes [batch, d1, d2, ...] to [batch, d1*d2*...].
//
// Typically placed between convolutional and linear layers.
type Flatten struct{}

// NewFlatten creates a new Flatten module.
func NewFlatten() *Flatten {
	return &Flatten{}
}

// Forward flattens all axes after the first.
func (f *Flatten) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	return input.Flatten()
}

// Parameters returns an empty slice.
func (f *Flatten) Parameters() []*Parameter {
	return nil
}
