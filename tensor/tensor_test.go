package tensor_test

import (
	"testing"

	"github.com/dpln-ml/dpln/backend/cpu"
	"github.com/dpln-ml/dpln/nn/functional"
	"github.com/dpln-ml/dpln/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI_Backward(t *testing.T) {
	x := tensor.MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}).RequireGrad()
	y, err := x.Mul(x)
	require.NoError(t, err)
	loss, err := y.Sum()
	require.NoError(t, err)
	require.NoError(t, loss.Backward())

	assert.Equal(t, []float64{2, 4, 6}, x.Grad().Data())
}

func TestPublicAPI_Errors(t *testing.T) {
	a, err := tensor.Zeros(tensor.Shape{3, 4})
	require.NoError(t, err)
	b, err := tensor.Ones(tensor.Shape{3, 5})
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.True(t, errors.Is(err, tensor.ErrShape))

	_, err = functional.CrossEntropy(a, a, nil, functional.ReductionMean)
	assert.True(t, errors.Is(err, tensor.ErrNotImplemented))

	assert.True(t, errors.Is(a.Backward(), tensor.ErrShape))
	assert.True(t, errors.Is(tensor.Scalar(1).Backward(), tensor.ErrNoGrad))
}

func TestPublicAPI_SequentialBackend(t *testing.T) {
	backend := cpu.NewWithConfig(cpu.Config{Parallel: cpu.Sequential()})
	raw := tensor.MustFromSlice([]float64{-1, 2}, tensor.Shape{2}).Raw()
	x := tensor.New(raw, backend).RequireGrad()

	y := x.ReLU()
	loss, err := y.Sum()
	require.NoError(t, err)
	require.NoError(t, loss.Backward())

	assert.Same(t, backend, y.Backend())
	assert.Equal(t, []float64{0, 1}, x.Grad().Data())
}

func TestPublicAPI_Conv2D(t *testing.T) {
	x := tensor.MustFromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, tensor.Shape{1, 1, 3, 3})
	w := tensor.MustFromSlice([]float64{1, 0, 0, 1}, tensor.Shape{1, 1, 2, 2})

	y, err := functional.Conv2D(x, w, nil, functional.Conv2DConfig{})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1, 2, 2}, y.Shape())
	assert.Equal(t, []float64{6, 8, 12, 14}, y.Data())
}
