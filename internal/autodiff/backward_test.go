package autodiff

import (
	"errors"
	"testing"

	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// must unwraps an op result, failing the test on error.
func must(t *testing.T) func(*Tensor, error) *Tensor {
	return func(x *Tensor, err error) *Tensor {
		t.Helper()
		require.NoError(t, err)
		return x
	}
}

func TestBackward_Simple(t *testing.T) {
	// loss = sum(x * x) → dloss/dx = 2x
	x := MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}).RequireGrad()
	loss := must(t)(must(t)(x.Mul(x)).Sum())

	require.NoError(t, loss.Backward())
	assert.Equal(t, []float64{2, 4, 6}, x.Grad().Data())
}

func TestBackward_NonScalarNeedsSeed(t *testing.T) {
	x := MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}).RequireGrad()
	y := must(t)(x.MulScalar(2))

	err := y.Backward()
	assert.True(t, errors.Is(err, tensor.ErrShape))
	assert.Nil(t, x.Grad())

	seed := MustFromSlice([]float64{1, 0, -1}, tensor.Shape{3})
	require.NoError(t, y.BackwardWith(seed))
	assert.Equal(t, []float64{2, 0, -2}, x.Grad().Data())
}

func TestBackward_SeedShapeMismatch(t *testing.T) {
	x := MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}).RequireGrad()
	y := x.ReLU()
	err := y.BackwardWith(MustFromSlice([]float64{1, 1}, tensor.Shape{2}))
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestBackward_NoGrad(t *testing.T) {
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2})
	loss := must(t)(x.Sum())
	assert.True(t, errors.Is(loss.Backward(), tensor.ErrNoGrad))
}

func TestBackward_LeafItself(t *testing.T) {
	x := Scalar(4).RequireGrad()
	require.NoError(t, x.Backward())
	assert.Equal(t, []float64{1}, x.Grad().Data())
}

func TestBackward_AccumulatesAcrossCalls(t *testing.T) {
	x := MustFromSlice([]float64{1, -2, 3}, tensor.Shape{3}).RequireGrad()
	w := MustFromSlice([]float64{0.5, 2, -1}, tensor.Shape{3}).RequireGrad()
	loss := must(t)(must(t)(x.Mul(w)).Sum())

	require.NoError(t, loss.Backward())
	once := append([]float64(nil), x.Grad().Data()...)
	onceW := append([]float64(nil), w.Grad().Data()...)

	require.NoError(t, loss.Backward())
	for i := range once {
		assert.InDelta(t, 2*once[i], x.Grad().Data()[i], 1e-12)
		assert.InDelta(t, 2*onceW[i], w.Grad().Data()[i], 1e-12)
	}

	x.ZeroGrad()
	assert.Nil(t, x.Grad())
	require.NoError(t, loss.Backward())
	assert.Equal(t, once, x.Grad().Data())
}

func TestBackward_FanOutSums(t *testing.T) {
	// y = x*x + x*3 reaches x through three edges: d/dx = 2x + 3.
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).RequireGrad()
	sq := must(t)(x.Mul(x))
	lin := must(t)(x.MulScalar(3))
	loss := must(t)(must(t)(sq.Add(lin)).Sum())

	require.NoError(t, loss.Backward())
	assert.Equal(t, []float64{5, 7}, x.Grad().Data())
}

func TestBackward_DiamondVisitsSharedNodeOnce(t *testing.T) {
	// h is shared by two branches; its backward must see the summed gradient.
	x := MustFromSlice([]float64{2}, tensor.Shape{1}).RequireGrad()
	h := must(t)(x.Pow(3))
	a := must(t)(h.MulScalar(2))
	b := must(t)(h.MulScalar(5))
	loss := must(t)(must(t)(a.Add(b)).Sum())

	require.NoError(t, loss.Backward())
	// d/dx 7x³ = 21x² = 84
	assert.InDelta(t, 84.0, x.Grad().Data()[0], 1e-9)
}

func TestBackward_DeepChainIsIterative(t *testing.T) {
	x := MustFromSlice([]float64{1}, tensor.Shape{1}).RequireGrad()
	y := x
	for i := 0; i < 20000; i++ {
		y = must(t)(y.AddScalar(0))
	}
	loss := must(t)(y.Sum())
	require.NoError(t, loss.Backward())
	assert.Equal(t, []float64{1}, x.Grad().Data())
}

func TestBackward_RetainGrad(t *testing.T) {
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).RequireGrad()
	h := must(t)(x.MulScalar(3)).RetainGrad()
	loss := must(t)(must(t)(h.Mul(h)).Sum())

	require.NoError(t, loss.Backward())
	assert.Equal(t, []float64{6, 12}, h.Grad().Data())
	assert.Equal(t, []float64{18, 36}, x.Grad().Data())
}

func TestBackward_SkipsConstants(t *testing.T) {
	x := MustFromSlice([]float64{1, 2}, tensor.Shape{2}).RequireGrad()
	c := MustFromSlice([]float64{3, 4}, tensor.Shape{2})
	loss := must(t)(must(t)(x.Mul(c)).Sum())

	require.NoError(t, loss.Backward())
	assert.Equal(t, []float64{3, 4}, x.Grad().Data())
	assert.Nil(t, c.Grad())
}

func TestBackward_BroadcastGradientReduced(t *testing.T) {
	x := MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}).RequireGrad()
	b := MustFromSlice([]float64{10, 20, 30}, tensor.Shape{3}).RequireGrad()
	loss := must(t)(must(t)(x.Add(b)).Sum())

	require.NoError(t, loss.Backward())
	assert.Equal(t, tensor.Shape{3}, b.Grad().Shape())
	assert.Equal(t, []float64{2, 2, 2}, b.Grad().Data())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, x.Grad().Data())
}
