package nn

import (
	"math"

	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
	"gonum.org/v1/gonum/stat/distuv"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *autodiff.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return fill(shape, distuv.Uniform{Min: -bound, Max: bound})
}

// Normal initializes weights from N(mean, std²).
func Normal(shape tensor.Shape, mean, std float64) *autodiff.Tensor {
	return fill(shape, distuv.Normal{Mu: mean, Sigma: std})
}

// Zeros creates a tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(shape tensor.Shape) *autodiff.Tensor {
	return autodiff.New(tensor.MustRaw(shape), nil)
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) *autodiff.Tensor {
	return autodiff.New(tensor.FullRaw(shape, 1), nil)
}

func fill(shape tensor.Shape, dist interface{ Rand() float64 }) *autodiff.Tensor {
	raw := tensor.MustRaw(shape)
	data := raw.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return autodiff.New(raw, nil)
}
