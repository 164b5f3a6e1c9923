package functional

import (
	"errors"
	"testing"

	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	for _, v := range []any{2, [2]int{2, 2}, Pair{2, 2}, []int{2, 2}} {
		p, err := ParsePair(v)
		require.NoError(t, err, "%#v", v)
		assert.Equal(t, Pair{2, 2}, p)
	}

	for _, v := range []any{0, -1, []int{1}, []int{1, 2, 3}, "2", 2.0, nil} {
		_, err := ParsePair(v)
		assert.True(t, errors.Is(err, tensor.ErrValue), "%#v", v)
	}
}

func TestParsePadding_Forms(t *testing.T) {
	tests := []struct {
		in   any
		want Padding
	}{
		{2, Padding{{2, 2}, {2, 2}}},
		{[2]int{1, 3}, Padding{{1, 1}, {3, 3}}},
		{[]int{1, 3}, Padding{{1, 1}, {3, 3}}},
		{[4]int{1, 2, 3, 4}, Padding{{1, 2}, {3, 4}}},
		{[]int{1, 2, 3, 4}, Padding{{1, 2}, {3, 4}}},
		{[2][2]int{{1, 2}, {3, 4}}, Padding{{1, 2}, {3, 4}}},
		{[][]int{{1, 2}, {3, 4}}, Padding{{1, 2}, {3, 4}}},
		{[][2]int{{1, 2}, {3, 4}}, Padding{{1, 2}, {3, 4}}},
		{[]any{1, [2]int{0, 2}}, Padding{{1, 1}, {0, 2}}},
		{[]any{[]int{3, 0}, 1}, Padding{{3, 0}, {1, 1}}},
		{[]any{1, 2, 3, 4}, Padding{{1, 2}, {3, 4}}},
	}
	for _, tc := range tests {
		got, err := ParsePadding(tc.in)
		require.NoError(t, err, "%#v", tc.in)
		assert.Equal(t, tc.want, got, "%#v", tc.in)
	}
}

func TestParsePadding_Rejects(t *testing.T) {
	for _, v := range []any{
		-1, []int{1, 2, 3}, [][]int{{1, 2, 3}, {1, 2}}, []any{1, "x"},
		[]any{1, 2, 3}, []any{[]int{1}, 2}, "1", 1.5, nil,
	} {
		_, err := ParsePadding(v)
		assert.True(t, errors.Is(err, tensor.ErrValue), "%#v", v)
	}
}

func TestParsePaddingMode(t *testing.T) {
	for s, want := range map[string]PaddingMode{
		"": PaddingZeros, "zeros": PaddingZeros, "reflect": PaddingReflect,
		"replicate": PaddingReplicate, "circular": PaddingCircular,
	} {
		got, err := ParsePaddingMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if s != "" {
			assert.Equal(t, s, got.String())
		}
	}

	_, err := ParsePaddingMode("wrap")
	assert.True(t, errors.Is(err, tensor.ErrValue))
}

func TestParseReduction(t *testing.T) {
	for s, want := range map[string]Reduction{
		"": ReductionMean, "mean": ReductionMean, "sum": ReductionSum, "none": ReductionNone,
	} {
		got, err := ParseReduction(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseReduction("max")
	assert.True(t, errors.Is(err, tensor.ErrValue))
}

func TestPaddingMode_Valid(t *testing.T) {
	for _, m := range []PaddingMode{PaddingZeros, PaddingReflect, PaddingReplicate, PaddingCircular} {
		assert.True(t, m.Valid(), m.String())
	}
	assert.False(t, PaddingMode(-1).Valid())
	assert.False(t, PaddingMode(4).Valid())
}

func TestPadding_Valid(t *testing.T) {
	assert.True(t, Padding{}.Valid())
	assert.True(t, Padding{{1, 0}, {0, 2}}.Valid())
	assert.False(t, Padding{{0, 0}, {0, -1}}.Valid())
}

func TestConv2DConfig_Validate(t *testing.T) {
	require.NoError(t, Conv2DConfig{}.Validate())
	require.NoError(t, Conv2DConfig{Stride: Pair{2, 1}, PaddingMode: PaddingCircular}.Validate())

	assert.True(t, errors.Is(Conv2DConfig{PaddingMode: PaddingMode(9)}.Validate(), tensor.ErrValue))
	assert.True(t, errors.Is(Conv2DConfig{Padding: Padding{{-1, 0}, {0, 0}}}.Validate(), tensor.ErrValue))
	assert.True(t, errors.Is(Conv2DConfig{Dilation: Pair{2, 2}}.Validate(), tensor.ErrNotImplemented))
	assert.True(t, errors.Is(Conv2DConfig{Groups: 2}.Validate(), tensor.ErrNotImplemented))
}
