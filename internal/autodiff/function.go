package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// Function is a node in the computation graph: the record of one operation
// application that knows how to map the gradient of its output onto the
// gradients of its inputs.
//
// Backward returns one gradient per input, in the order of Inputs, each
// shaped like the corresponding input. An entry may be nil when that input
// does not require gradients.
type Function interface {
	// Name identifies the operation, e.g. "matmul".
	Name() string

	// Inputs returns the operands in call order.
	Inputs() []*Tensor

	// Backward computes input gradients from the output gradient.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor
}
