package autodiff

import (
	"errors"
	"testing"

	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, 2, x.Dim())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, 6.0, x.At(1, 2))
	assert.True(t, x.IsLeaf())
	assert.False(t, x.RequiresGrad())
	assert.Nil(t, x.Grad())
}

func TestFromSlice_CopiesData(t *testing.T) {
	data := []float64{1, 2}
	x := MustFromSlice(data, tensor.Shape{2})
	data[0] = 100
	assert.Equal(t, 1.0, x.At(0))
}

func TestFromSlice_ShapeMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2})
	assert.True(t, errors.Is(err, tensor.ErrShape))

	_, err = Zeros(tensor.Shape{2, -1})
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestConstructors(t *testing.T) {
	z, err := Zeros(tensor.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())

	o, err := Ones(tensor.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, o.Data())

	f, err := Full(tensor.Shape{2}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5}, f.Data())

	s := Scalar(3)
	assert.Equal(t, 0, s.Dim())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestRand(t *testing.T) {
	r, err := Rand(tensor.Shape{100}, -1, 1)
	require.NoError(t, err)
	for _, v := range r.Data() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}

	_, err = Rand(tensor.Shape{2}, 1, 1)
	assert.True(t, errors.Is(err, tensor.ErrValue))

	n, err := Randn(tensor.Shape{4, 4})
	require.NoError(t, err)
	assert.Equal(t, 16, n.NumElements())
}

func TestItem_RequiresSingleElement(t *testing.T) {
	_, err := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).Item()
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestRequiresGrad(t *testing.T) {
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).RequireGrad()
	assert.True(t, x.RequiresGrad())

	y, err := x.Mul(x)
	require.NoError(t, err)
	assert.True(t, y.RequiresGrad())
	assert.False(t, y.IsLeaf())
	assert.Equal(t, "mul", y.GradFn().Name())

	err = y.SetRequiresGrad(false)
	assert.True(t, errors.Is(err, tensor.ErrValue))

	require.NoError(t, x.SetRequiresGrad(false))
	assert.False(t, x.RequiresGrad())
}

func TestNoGraphWithoutRequiresGrad(t *testing.T) {
	a := MustFromSlice([]float64{1, 2}, tensor.Shape{2})
	b := MustFromSlice([]float64{3, 4}, tensor.Shape{2})

	c, err := a.Add(b)
	require.NoError(t, err)
	assert.Nil(t, c.GradFn())
	assert.False(t, c.RequiresGrad())
}

func TestDetach(t *testing.T) {
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).RequireGrad()
	y, err := x.MulScalar(2)
	require.NoError(t, err)

	d := y.Detach()
	assert.True(t, d.IsLeaf())
	assert.False(t, d.RequiresGrad())
	assert.Equal(t, y.Data(), d.Data())
}

func TestString(t *testing.T) {
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).RequireGrad()
	y := x.ReLU()
	assert.Contains(t, y.String(), "grad_fn=relu")
	assert.Contains(t, x.String(), "(2)")
}
