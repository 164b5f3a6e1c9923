package nn

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/nn/functional"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
//	input, _ := autodiff.Randn(tensor.Shape{32, 784})
//	output, err := layer.Forward(input) // shape: [32, 128]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features] or nil
}

// NewLinear creates a Linear layer with bias.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return newLinear(inFeatures, outFeatures, true)
}

// NewLinearNoBias creates a Linear layer without bias.
func NewLinearNoBias(inFeatures, outFeatures int) *Linear {
	return newLinear(inFeatures, outFeatures, false)
}

func newLinear(inFeatures, outFeatures int, useBias bool) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}
	l := &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Xavier(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures})),
	}
	if useBias {
		l.bias = NewParameter("bias", Zeros(tensor.Shape{outFeatures}))
	}
	return l
}

// Forward computes x @ W + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear) Forward(input *autodiff.Tensor) (*autodiff.Tensor, error) {
	shape := input.Shape()
	if len(shape) < 2 || shape[len(shape)-1] != l.inFeatures {
		return nil, tensor.ShapeErrorf("linear: expected input [..., %d], got %v", l.inFeatures, shape)
	}
	var b *autodiff.Tensor
	if l.bias != nil {
		b = l.bias.Tensor()
	}
	return functional.Linear(input, l.weight.Tensor(), b)
}

// Parameters returns [weight, bias], or [weight] without bias.
func (l *Linear) Parameters() []*Parameter {
	if l.bias != nil {
		return []*Parameter{l.weight, l.bias}
	}
	return []*Parameter{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter, or nil.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// String returns a string representation of the layer.
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(in_features=%d, out_features=%d, bias=%v)", l.inFeatures, l.outFeatures, l.bias != nil)
}
