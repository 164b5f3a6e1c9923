package nn

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter is a named leaf tensor that requires gradients. Its gradient
// is the one accumulated on the tensor by backward.
//
// Example:
//
//	weight := nn.NewParameter("weight", w)
//	// ... loss.Backward()
//	g := weight.Grad()
type Parameter struct {
	name   string
	tensor *autodiff.Tensor
}

// NewParameter creates a new trainable parameter and enables gradient
// tracking on t.
func NewParameter(name string, t *autodiff.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t.RequireGrad(),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *autodiff.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient.
//
// Returns nil if no backward pass has reached the parameter since the
// last ZeroGrad.
func (p *Parameter) Grad() *tensor.RawTensor {
	return p.tensor.Grad()
}

// ZeroGrad clears the gradient.
//
// Gradients accumulate across backward calls, so this should be called
// before each training iteration.
func (p *Parameter) ZeroGrad() {
	p.tensor.ZeroGrad()
}
