package cpu

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dpln-ml/dpln/internal/parallel"
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, data []float64, shape ...int) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.RawFromSlice(data, tensor.Shape(shape))
	require.NoError(t, err)
	return r
}

func randRaw(rng *rand.Rand, shape ...int) *tensor.RawTensor {
	r := tensor.MustRaw(tensor.Shape(shape))
	for i := range r.Data() {
		r.Data()[i] = rng.NormFloat64()
	}
	return r
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func TestCPUBackend_AddBroadcast(t *testing.T) {
	cpu := New()

	a := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := raw(t, []float64{10, 20, 30}, 3)
	c := raw(t, []float64{100, 200}, 2, 1)

	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, cpu.Add(a, b).Data())
	assert.Equal(t, []float64{101, 102, 103, 204, 205, 206}, cpu.Add(a, c).Data())
	assert.Equal(t, tensor.Shape{2, 3}, cpu.Mul(b, c).Shape())
	assert.Equal(t, []float64{-9, -18, -27, -6, -15, -24}, cpu.Sub(a, b).Data())
}

func TestCPUBackend_AddIncompatiblePanics(t *testing.T) {
	cpu := New()
	a := raw(t, []float64{1, 2, 3}, 3)
	b := raw(t, []float64{1, 2}, 2)
	assert.Panics(t, func() { cpu.Add(a, b) })
}

func TestCPUBackend_Compare(t *testing.T) {
	cpu := New()
	a := raw(t, []float64{1, 2, 3}, 3)
	b := raw(t, []float64{2}, 1)

	assert.Equal(t, []float64{0, 0, 1}, cpu.Compare(a, b, tensor.OpGreater).Data())
	assert.Equal(t, []float64{0, 1, 1}, cpu.Compare(a, b, tensor.OpGreaterEqual).Data())
	assert.Equal(t, []float64{1, 0, 0}, cpu.Compare(a, b, tensor.OpLess).Data())
	assert.Equal(t, []float64{0, 1, 0}, cpu.Compare(a, b, tensor.OpEqual).Data())
	assert.Equal(t, []float64{1, 0, 1}, cpu.Compare(a, b, tensor.OpNotEqual).Data())
}

func TestCPUBackend_SumTo(t *testing.T) {
	cpu := New()
	g := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	assert.Equal(t, []float64{5, 7, 9}, cpu.SumTo(g, tensor.Shape{3}).Data())
	assert.Equal(t, []float64{6, 15}, cpu.SumTo(g, tensor.Shape{2, 1}).Data())
	assert.Equal(t, []float64{21}, cpu.SumTo(g, tensor.Shape{1, 1}).Data())
	assert.Equal(t, []float64{21}, cpu.SumTo(g, tensor.Shape{}).Data())
}

func TestCPUBackend_Sum(t *testing.T) {
	cpu := New()
	x := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	all := cpu.Sum(x, nil, false)
	assert.Equal(t, tensor.Shape{}, all.Shape())
	assert.Equal(t, 21.0, all.Data()[0])

	rows := cpu.Sum(x, []int{1}, false)
	assert.Equal(t, tensor.Shape{2}, rows.Shape())
	assert.Equal(t, []float64{6, 15}, rows.Data())

	cols := cpu.Sum(x, []int{0}, true)
	assert.Equal(t, tensor.Shape{1, 3}, cols.Shape())
	assert.Equal(t, []float64{5, 7, 9}, cols.Data())
}

func TestCPUBackend_MatMul(t *testing.T) {
	cpu := New()
	a := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := raw(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)

	c := cpu.MatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestCPUBackend_MatMulBroadcastBatch(t *testing.T) {
	cpu := New()
	rng := rand.New(rand.NewSource(1))
	w := randRaw(rng, 2, 3)
	x := randRaw(rng, 4, 3, 5)

	out := cpu.MatMul(w, x)
	require.Equal(t, tensor.Shape{4, 2, 5}, out.Shape())

	for b := 0; b < 4; b++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 5; j++ {
				want := 0.0
				for k := 0; k < 3; k++ {
					want += w.At(i, k) * x.At(b, k, j)
				}
				assert.InDelta(t, want, out.At(b, i, j), 1e-12)
			}
		}
	}
}

func TestCPUBackend_Transpose(t *testing.T) {
	cpu := New()
	x := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	xt := cpu.Transpose(x)
	assert.Equal(t, tensor.Shape{3, 2}, xt.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, xt.Data())

	y := randRaw(rand.New(rand.NewSource(2)), 2, 3, 4)
	yt := cpu.Transpose(y, 0, 2, 1)
	assert.Equal(t, tensor.Shape{2, 4, 3}, yt.Shape())
	assert.Equal(t, y.At(1, 2, 3), yt.At(1, 3, 2))
	assert.Equal(t, y.Data(), cpu.Transpose(yt, 0, 2, 1).Data())
}

func TestCPUBackend_PadModes(t *testing.T) {
	cpu := New()
	x := raw(t, []float64{1, 2, 3}, 3)
	widths := [][2]int{{2, 2}}

	assert.Equal(t, []float64{0, 0, 1, 2, 3, 0, 0}, cpu.Pad(x, widths, tensor.PadConstant).Data())
	assert.Equal(t, []float64{3, 2, 1, 2, 3, 2, 1}, cpu.Pad(x, widths, tensor.PadReflect).Data())
	assert.Equal(t, []float64{1, 1, 1, 2, 3, 3, 3}, cpu.Pad(x, widths, tensor.PadEdge).Data())
	assert.Equal(t, []float64{2, 1, 1, 2, 3, 3, 2}, cpu.Pad(x, widths, tensor.PadSymmetric).Data())
}

func TestCPUBackend_Pad2D(t *testing.T) {
	cpu := New()
	x := raw(t, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 1, 1, 3, 3)
	widths := [][2]int{{0, 0}, {0, 0}, {1, 1}, {1, 1}}

	reflect := cpu.Pad(x, widths, tensor.PadReflect)
	assert.Equal(t, tensor.Shape{1, 1, 5, 5}, reflect.Shape())
	assert.Equal(t, []float64{
		5, 4, 5, 6, 5,
		2, 1, 2, 3, 2,
		5, 4, 5, 6, 5,
		8, 7, 8, 9, 8,
		5, 4, 5, 6, 5,
	}, reflect.Data())

	edge := cpu.Pad(x, widths, tensor.PadEdge)
	assert.Equal(t, []float64{
		1, 1, 2, 3, 3,
		1, 1, 2, 3, 3,
		4, 4, 5, 6, 6,
		7, 7, 8, 9, 9,
		7, 7, 8, 9, 9,
	}, edge.Data())
}

func TestCPUBackend_PadBackwardFoldsBorder(t *testing.T) {
	cpu := New()
	inShape := tensor.Shape{3}
	widths := [][2]int{{2, 2}}
	ones := tensor.FullRaw(tensor.Shape{7}, 1)

	// Each input element receives one count per padded cell copied from it.
	assert.Equal(t, []float64{1, 1, 1}, cpu.PadBackward(ones, inShape, widths, tensor.PadConstant).Data())
	assert.Equal(t, []float64{2, 3, 2}, cpu.PadBackward(ones, inShape, widths, tensor.PadReflect).Data())
	assert.Equal(t, []float64{3, 1, 3}, cpu.PadBackward(ones, inShape, widths, tensor.PadEdge).Data())
	assert.Equal(t, []float64{2, 3, 2}, cpu.PadBackward(ones, inShape, widths, tensor.PadSymmetric).Data())
}

func TestCPUBackend_PadBackwardIsAdjoint(t *testing.T) {
	cpu := New()
	rng := rand.New(rand.NewSource(3))
	x := randRaw(rng, 2, 3, 4, 5)
	widths := [][2]int{{0, 0}, {0, 0}, {2, 1}, {3, 4}}

	for _, mode := range []tensor.PadMode{tensor.PadConstant, tensor.PadReflect, tensor.PadEdge, tensor.PadSymmetric} {
		padded := cpu.Pad(x, widths, mode)
		y := randRaw(rng, padded.Shape()...)
		back := cpu.PadBackward(y, x.Shape(), widths, mode)
		assert.InDelta(t, dot(padded.Data(), y.Data()), dot(x.Data(), back.Data()), 1e-9, "mode %s", mode)
	}
}

func TestCPUBackend_Im2Col2D(t *testing.T) {
	cpu := New()
	x := raw(t, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 1, 1, 3, 3)

	col := cpu.Im2Col2D(x, 2, 2, 1, 1)
	require.Equal(t, tensor.Shape{1, 4, 4}, col.Shape())
	assert.Equal(t, []float64{
		1, 2, 4, 5,
		2, 3, 5, 6,
		4, 5, 7, 8,
		5, 6, 8, 9,
	}, col.Data())

	strided := cpu.Im2Col2D(x, 2, 2, 2, 2)
	assert.Equal(t, tensor.Shape{1, 1, 4}, strided.Shape())
	assert.Equal(t, []float64{1, 2, 4, 5}, strided.Data())
}

func TestCPUBackend_Im2Col2DChannelMajor(t *testing.T) {
	cpu := New()
	// Two channels, 2x2 image, 2x2 kernel → one position with 8 entries.
	x := raw(t, []float64{1, 2, 3, 4, 10, 20, 30, 40}, 1, 2, 2, 2)

	col := cpu.Im2Col2D(x, 2, 2, 1, 1)
	assert.Equal(t, []float64{1, 2, 3, 4, 10, 20, 30, 40}, col.Data())
}

func TestCPUBackend_Col2Im2DIsAdjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, cfg := range []parallel.Config{parallel.Sequential(), {Enabled: true, NumWorkers: 4, MinChunkSize: 1}} {
		cpu := NewWithConfig(Config{Parallel: cfg})
		x := randRaw(rng, 2, 3, 5, 6)
		col := cpu.Im2Col2D(x, 3, 2, 1, 2)
		y := randRaw(rng, col.Shape()...)
		back := cpu.Col2Im2D(y, x.Shape(), 3, 2, 1, 2)
		assert.InDelta(t, dot(col.Data(), y.Data()), dot(x.Data(), back.Data()), 1e-9)
	}
}

func TestCPUBackend_Softmax(t *testing.T) {
	cpu := New()
	x := raw(t, []float64{1, 2, 3, 1000, 1000, 1000}, 2, 3)

	s := cpu.Softmax(x, 1)
	for r := 0; r < 2; r++ {
		assert.InDelta(t, 1.0, s.At(r, 0)+s.At(r, 1)+s.At(r, 2), 1e-12)
	}
	assert.InDelta(t, 1.0/3, s.At(1, 0), 1e-12)

	cols := cpu.Softmax(x, 0)
	assert.InDelta(t, 1.0, cols.At(0, 0)+cols.At(1, 0), 1e-12)
	assert.False(t, math.IsNaN(cols.At(0, 0)))
}

func TestCPUBackend_SigmoidStable(t *testing.T) {
	cpu := New()
	s := cpu.Sigmoid(raw(t, []float64{-1000, 0, 1000}, 3))
	assert.Equal(t, []float64{0, 0.5, 1}, s.Data())
}

func TestStrideMap_Broadcast(t *testing.T) {
	// (3, 1) broadcast to (2, 3, 4): every output row of 4 reads one element.
	m := broadcastMap(tensor.Shape{3, 1}, tensor.Shape{2, 3, 4})
	assert.Equal(t, []int{0, 1, 0}, m.src)

	got := make([]int, 0, 24)
	for i := 0; i < 24; i++ {
		got = append(got, m.index(i))
	}
	assert.Equal(t, []int{
		0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
		0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	}, got)

	scalar := broadcastMap(tensor.Shape{}, tensor.Shape{2, 2})
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, scalar.index(i))
	}
}

func TestStrideMap_Permute(t *testing.T) {
	// Transposing (2, 3): output position (j, i) reads input (i, j).
	m := permuteMap(tensor.Shape{2, 3}, []int{1, 0})
	got := make([]int, 6)
	for i := range got {
		got[i] = m.index(i)
	}
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, got)
}
