package main

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/dpln-ml/dpln/nn/functional"
	"github.com/dpln-ml/dpln/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrain(t *testing.T) {
	for _, opt := range []string{"sgd", "adam"} {
		t.Run(opt, func(t *testing.T) {
			loss, err := train(trainConfig{
				Samples: 8, Size: 5, Epochs: 20, LR: 0.01,
				Optimizer: opt, PaddingMode: "reflect", Loss: "mse",
			}, quietLogger())
			require.NoError(t, err)
			assert.False(t, math.IsNaN(loss))
			assert.GreaterOrEqual(t, loss, 0.0)
		})
	}
}

func TestTrain_InvalidConfig(t *testing.T) {
	base := trainConfig{Samples: 4, Size: 4, Epochs: 1, LR: 0.01, Optimizer: "adam", Loss: "mse"}

	bad := base
	bad.Optimizer = "rmsprop"
	_, err := train(bad, quietLogger())
	assert.True(t, errors.Is(err, tensor.ErrValue))

	bad = base
	bad.Loss = "huber"
	_, err = train(bad, quietLogger())
	assert.True(t, errors.Is(err, tensor.ErrValue))

	bad = base
	bad.PaddingMode = "wrap"
	_, err = train(bad, quietLogger())
	assert.True(t, errors.Is(err, tensor.ErrValue))

	bad = base
	bad.Size = 2
	_, err = train(bad, quietLogger())
	assert.True(t, errors.Is(err, tensor.ErrValue))
}

func TestGradCheckConv2D(t *testing.T) {
	modes := []functional.PaddingMode{
		functional.PaddingZeros,
		functional.PaddingReflect,
		functional.PaddingReplicate,
		functional.PaddingCircular,
	}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			worst, err := gradCheckConv2D(functional.Conv2DConfig{
				Stride:      functional.Pair{2, 1},
				Padding:     functional.Padding{{1, 1}, {2, 0}},
				PaddingMode: mode,
			}, quietLogger())
			require.NoError(t, err)
			assert.Less(t, worst, 1e-5)
		})
	}
}

func TestRunGradCheck_Flags(t *testing.T) {
	require.NoError(t, runGradCheck([]string{"-padding", "0", "-tol", "1e-4"}))
	assert.Error(t, runGradCheck([]string{"-padding-mode", "wrap"}))
	assert.Error(t, runGradCheck([]string{"-stride", "0"}))
}
