package tensor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 0, Shape{2, 0, 4}.NumElements())
}

func TestShape_Validate(t *testing.T) {
	require.NoError(t, Shape{2, 0}.Validate())
	err := Shape{2, -1}.Validate()
	assert.True(t, errors.Is(err, ErrShape))
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "(2, 3)", Shape{2, 3}.String())
	assert.Equal(t, "()", Shape{}.String())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b Shape
		want Shape
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{2, 3, 5}, Shape{2, 3, 5}},
		{Shape{}, Shape{4, 2}, Shape{4, 2}},
		{Shape{2, 1, 4}, Shape{3, 1}, Shape{2, 3, 4}},
	}
	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		require.NoError(t, err, "%v + %v", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%v + %v", tt.a, tt.b)
	}

	_, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestMatMulShape(t *testing.T) {
	got, err := MatMulShape(Shape{2, 3}, Shape{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, got)

	got, err = MatMulShape(Shape{2, 3}, Shape{5, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{5, 2, 4}, got)

	_, err = MatMulShape(Shape{2, 3}, Shape{4, 2})
	assert.True(t, errors.Is(err, ErrShape))

	_, err = MatMulShape(Shape{3}, Shape{3, 2})
	assert.True(t, errors.Is(err, ErrShape))

	_, err = MatMulShape(Shape{2, 2, 3}, Shape{3, 3, 4})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestNormalizeAxis(t *testing.T) {
	ax, err := NormalizeAxis(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ax)

	_, err = NormalizeAxis(3, 3)
	assert.True(t, errors.Is(err, ErrShape))
	_, err = NormalizeAxis(-4, 3)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestPermutation(t *testing.T) {
	require.NoError(t, ValidatePermutation([]int{2, 0, 1}, 3))
	assert.Error(t, ValidatePermutation([]int{0, 0, 1}, 3))
	assert.Error(t, ValidatePermutation([]int{0, 1}, 3))

	axes := []int{2, 0, 1}
	assert.Equal(t, Shape{4, 2, 3}, PermuteShape(Shape{2, 3, 4}, axes))
	assert.Equal(t, Shape{2, 3, 4}, PermuteShape(Shape{4, 2, 3}, InversePermutation(axes)))
}

func TestRawTensor(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, raw.Dim())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 6.0, raw.At(1, 2))
	assert.Equal(t, 2.0, raw.At(0, 1))

	clone := raw.Clone()
	clone.Data()[0] = 100
	assert.Equal(t, 1.0, raw.Data()[0])
	assert.Equal(t, Shape{2, 3}, clone.Shape())

	full := FullRaw(Shape{2, 2}, 7)
	assert.Equal(t, []float64{7, 7, 7, 7}, full.Data())

	assert.Panics(t, func() { raw.At(2, 0) })
	assert.Panics(t, func() { raw.At(0) })
}

func TestRawFromSlice_Mismatch(t *testing.T) {
	_, err := RawFromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.True(t, errors.Is(err, ErrShape))

	_, err = NewRaw(Shape{-1})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, errors.Is(ValueErrorf("bad %d", 1), ErrValue))
	assert.True(t, errors.Is(NotImplementedf("dilation"), ErrNotImplemented))
	assert.Contains(t, ShapeErrorf("rank %d", 3).Error(), "rank 3")
}
