package functional

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// L1Loss returns the reduced mean absolute error |x - y|.
func L1Loss(x, y *autodiff.Tensor, reduction Reduction) (*autodiff.Tensor, error) {
	if err := checkReduction(reduction); err != nil {
		return nil, err
	}
	diff, err := x.Sub(y)
	if err != nil {
		return nil, err
	}
	return reduce(diff.Abs(), reduction)
}

// MSELoss returns the reduced squared error (x - y)².
//
//	MSELoss([1 2 3], [1 1 1], ReductionSum)  = 5
//	MSELoss([1 2 3], [1 1 1], ReductionMean) = 5/3
//	MSELoss([1 2 3], [1 1 1], ReductionNone) = [0 1 4]
func MSELoss(x, y *autodiff.Tensor, reduction Reduction) (*autodiff.Tensor, error) {
	if err := checkReduction(reduction); err != nil {
		return nil, err
	}
	diff, err := x.Sub(y)
	if err != nil {
		return nil, err
	}
	sq, err := diff.Pow(2)
	if err != nil {
		return nil, err
	}
	return reduce(sq, reduction)
}

// CrossEntropy is declared for API completeness and always returns an
// ErrNotImplemented error. weight may be nil.
func CrossEntropy(x, y, weight *autodiff.Tensor, reduction Reduction) (*autodiff.Tensor, error) {
	return nil, tensor.NotImplementedf("cross_entropy is not implemented")
}

func checkReduction(r Reduction) error {
	switch r {
	case ReductionMean, ReductionSum, ReductionNone:
		return nil
	default:
		return tensor.ValueErrorf("reduction must be mean, sum or none, got %v", r)
	}
}

func reduce(l *autodiff.Tensor, r Reduction) (*autodiff.Tensor, error) {
	switch r {
	case ReductionSum:
		return l.Sum()
	case ReductionNone:
		return l, nil
	default:
		return l.Mean()
	}
}
