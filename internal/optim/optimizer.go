// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients that backward accumulated on each
// nn.Parameter and update the parameter data in place.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR: 0.001,
//	})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    output, _ := model.Forward(input)
//	    loss, _ := functional.MSELoss(output, targets, functional.ReductionMean)
//	    _ = loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/dpln-ml/dpln/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters based on computed gradients to
// minimize the loss function during training.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Parameters without a gradient (not reached by the last backward
	// pass) are left unchanged.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Gradients accumulate across backward calls, so this should be
	// called before each backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// zeroGrad clears the gradient of every parameter.
func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
