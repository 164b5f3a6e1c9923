package main

import (
	"flag"
	"log/slog"
	"math"

	"github.com/dpln-ml/dpln/nn/functional"
	"github.com/dpln-ml/dpln/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

func runGradCheck(args []string) error {
	fs := flag.NewFlagSet("gradcheck", flag.ContinueOnError)
	verbose := commonFlags(fs)
	stride := fs.Int("stride", 1, "convolution stride")
	padding := fs.Int("padding", 1, "padding on every side")
	mode := fs.String("padding-mode", "zeros", "zeros, reflect, replicate or circular")
	tol := fs.Float64("tol", 1e-5, "maximum allowed absolute difference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(*verbose)

	pm, err := functional.ParsePaddingMode(*mode)
	if err != nil {
		return err
	}
	pad, err := functional.ParsePadding(*padding)
	if err != nil {
		return err
	}
	st, err := functional.ParsePair(*stride)
	if err != nil {
		return err
	}
	cfg := functional.Conv2DConfig{Stride: st, Padding: pad, PaddingMode: pm}

	worst, err := gradCheckConv2D(cfg, logger)
	if err != nil {
		return err
	}
	if worst > *tol {
		return errors.Errorf("gradcheck: max difference %g exceeds tolerance %g", worst, *tol)
	}
	logger.Info("gradcheck passed", "max_diff", worst)
	return nil
}

// gradCheckConv2D compares backward gradients of sum(conv2d(x, w, b) * r)
// against central differences for x, w and b, returning the largest
// absolute difference.
func gradCheckConv2D(cfg functional.Conv2DConfig, logger *slog.Logger) (float64, error) {
	shapes := []tensor.Shape{{2, 2, 5, 5}, {3, 2, 3, 3}, {3}}
	names := []string{"input", "weight", "bias"}

	values := make([][]float64, len(shapes))
	for i, s := range shapes {
		t, err := tensor.Randn(s)
		if err != nil {
			return 0, err
		}
		values[i] = t.Data()
	}

	probe, _, err := convSum(values, shapes, cfg, nil, -1)
	if err != nil {
		return 0, err
	}
	r, err := tensor.Randn(probe.Shape())
	if err != nil {
		return 0, err
	}

	worst := 0.0
	for i := range shapes {
		loss, operands, err := convSum(values, shapes, cfg, r, i)
		if err != nil {
			return 0, err
		}
		if err := loss.Backward(); err != nil {
			return 0, errors.WithMessage(err, names[i])
		}
		analytic := operands[i].Grad().Data()

		numeric := fd.Gradient(nil, func(v []float64) float64 {
			vals := append([][]float64(nil), values...)
			vals[i] = v
			l, _, err := convSum(vals, shapes, cfg, r, -1)
			if err != nil {
				return math.NaN()
			}
			out, _ := l.Item()
			return out
		}, values[i], &fd.Settings{Formula: fd.Central, Step: 1e-6})

		diff := 0.0
		for j := range numeric {
			diff = math.Max(diff, math.Abs(numeric[j]-analytic[j]))
		}
		logger.Info("gradient", "param", names[i], "shape", shapes[i].String(), "max_diff", diff)
		worst = math.Max(worst, diff)
	}
	return worst, nil
}

// convSum evaluates conv2d on fresh tensors built from values. With a nil r
// it returns the raw convolution; otherwise sum(conv * r). The operand at
// index track requires gradients.
func convSum(values [][]float64, shapes []tensor.Shape, cfg functional.Conv2DConfig, r *tensor.Tensor, track int) (*tensor.Tensor, []*tensor.Tensor, error) {
	ts := make([]*tensor.Tensor, len(values))
	for i := range values {
		t, err := tensor.FromSlice(values[i], shapes[i])
		if err != nil {
			return nil, nil, err
		}
		if i == track {
			t.RequireGrad()
		}
		ts[i] = t
	}
	out, err := functional.Conv2D(ts[0], ts[1], ts[2], cfg)
	if err != nil {
		return nil, nil, err
	}
	if r == nil {
		return out, ts, nil
	}
	weighted, err := out.Mul(r)
	if err != nil {
		return nil, nil, err
	}
	loss, err := weighted.Sum()
	if err != nil {
		return nil, nil, err
	}
	return loss, ts, nil
}
