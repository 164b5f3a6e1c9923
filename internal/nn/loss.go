package nn

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/nn/functional"
)

// MSELoss computes the squared error between predictions and targets.
//
//	Loss = reduce((predictions - targets)²)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
//
// Example:
//
//	mse := nn.NewMSELoss(functional.ReductionMean)
//	predictions, _ := model.Forward(input)
//	loss, err := mse.Forward(predictions, targets)
type MSELoss struct {
	reduction functional.Reduction
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss(reduction functional.Reduction) *MSELoss {
	return &MSELoss{reduction: reduction}
}

// Forward computes the loss. Targets broadcast against predictions.
func (m *MSELoss) Forward(predictions, targets *autodiff.Tensor) (*autodiff.Tensor, error) {
	return functional.MSELoss(predictions, targets, m.reduction)
}

// L1Loss computes the absolute error between predictions and targets.
//
//	Loss = reduce(|predictions - targets|)
type L1Loss struct {
	reduction functional.Reduction
}

// NewL1Loss creates a new L1 loss function.
func NewL1Loss(reduction functional.Reduction) *L1Loss {
	return &L1Loss{reduction: reduction}
}

// Forward computes the loss.
func (l *L1Loss) Forward(predictions, targets *autodiff.Tensor) (*autodiff.Tensor, error) {
	return functional.L1Loss(predictions, targets, l.reduction)
}
