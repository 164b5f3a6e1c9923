// Package nn implements neural network modules on top of the functional layer.
//
// This package provides building blocks for constructing neural networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable tensors with gradient tracking
//   - Linear, Conv2D: Layers with learnable weights
//   - Activations: ReLU, Sigmoid, Tanh, Softmax
//   - Flatten, Sequential: Shape adapter and container
//   - Losses: MSELoss, L1Loss
//
// Every module delegates its math to internal/nn/functional, so gradients
// come from the autodiff graph and no module defines its own backward.
package nn

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	// Shape mismatches are reported as errors wrapping tensor.ErrShape.
	Forward(input *autodiff.Tensor) (*autodiff.Tensor, error)

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules. Activation functions return none.
	Parameters() []*Parameter
}

// ZeroGrad clears the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
