package autodiff

import (
	"github.com/dpln-ml/dpln/internal/backend/cpu"
	"github.com/dpln-ml/dpln/internal/tensor"
	"gonum.org/v1/gonum/stat/distuv"
)

var defaultBackend tensor.Backend = cpu.New()

// DefaultBackend returns the backend used by constructors that do not take one.
func DefaultBackend() tensor.Backend {
	return defaultBackend
}

// New wraps raw as a leaf tensor computing on b.
// A nil backend selects DefaultBackend.
func New(raw *tensor.RawTensor, b tensor.Backend) *Tensor {
	if b == nil {
		b = defaultBackend
	}
	return &Tensor{raw: raw, backend: b}
}

// FromSlice creates a leaf tensor holding a copy of data.
func FromSlice(data []float64, shape tensor.Shape) (*Tensor, error) {
	raw, err := tensor.RawFromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, nil), nil
}

// MustFromSlice is like FromSlice but panics on a shape mismatch.
// Intended for literals in tests and examples.
func MustFromSlice(data []float64, shape tensor.Shape) *Tensor {
	t, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape tensor.Shape) (*Tensor, error) {
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		return nil, err
	}
	return New(raw, nil), nil
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor filled with value.
func Full(shape tensor.Shape, value float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return New(tensor.FullRaw(shape, value), nil), nil
}

// Scalar creates a 0-D tensor.
func Scalar(value float64) *Tensor {
	return New(tensor.FullRaw(tensor.Shape{}, value), nil)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn(shape tensor.Shape) (*Tensor, error) {
	return sample(shape, distuv.Normal{Mu: 0, Sigma: 1})
}

// Rand creates a tensor with values drawn uniformly from [low, high).
func Rand(shape tensor.Shape, low, high float64) (*Tensor, error) {
	if !(low < high) {
		return nil, tensor.ValueErrorf("rand: low (%g) must be less than high (%g)", low, high)
	}
	return sample(shape, distuv.Uniform{Min: low, Max: high})
}

type sampler interface {
	Rand() float64
}

func sample(shape tensor.Shape, dist sampler) (*Tensor, error) {
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		return nil, err
	}
	data := raw.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return New(raw, nil), nil
}
