package main

import (
	"flag"
	"log/slog"

	"github.com/dpln-ml/dpln/nn"
	"github.com/dpln-ml/dpln/nn/functional"
	"github.com/dpln-ml/dpln/optim"
	"github.com/dpln-ml/dpln/tensor"
	"github.com/pkg/errors"
)

type trainConfig struct {
	Samples     int
	Size        int
	Epochs      int
	LR          float64
	Optimizer   string
	PaddingMode string
	Loss        string
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	verbose := commonFlags(fs)
	var cfg trainConfig
	fs.IntVar(&cfg.Samples, "samples", 32, "number of synthetic samples")
	fs.IntVar(&cfg.Size, "size", 6, "height and width of each sample")
	fs.IntVar(&cfg.Epochs, "epochs", 200, "number of full-batch steps")
	fs.Float64Var(&cfg.LR, "lr", 0.01, "learning rate")
	fs.StringVar(&cfg.Optimizer, "optim", "adam", "optimizer: sgd or adam")
	fs.StringVar(&cfg.PaddingMode, "padding-mode", "zeros", "conv padding mode: zeros, reflect, replicate or circular")
	fs.StringVar(&cfg.Loss, "loss", "mse", "loss: mse or l1")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(*verbose)

	final, err := train(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("training finished", "loss", final)
	return nil
}

// train fits conv(3x3) -> relu -> flatten -> linear to targets produced by
// a fixed random convolution, and returns the final loss.
func train(cfg trainConfig, logger *slog.Logger) (float64, error) {
	if cfg.Samples <= 0 || cfg.Size < 3 || cfg.Epochs <= 0 {
		return 0, errors.Wrapf(tensor.ErrValue, "train: samples=%d size=%d epochs=%d", cfg.Samples, cfg.Size, cfg.Epochs)
	}
	mode, err := functional.ParsePaddingMode(cfg.PaddingMode)
	if err != nil {
		return 0, err
	}

	x, y, err := syntheticData(cfg.Samples, cfg.Size)
	if err != nil {
		return 0, errors.WithMessage(err, "synthetic data")
	}

	conv, err := nn.NewConv2D(nn.Conv2DConfig{
		InChannels:  1,
		OutChannels: 2,
		KernelSize:  functional.Pair{3, 3},
		Padding:     functional.Padding{{1, 1}, {1, 1}},
		PaddingMode: mode,
	})
	if err != nil {
		return 0, err
	}
	model := nn.NewSequential(
		conv,
		nn.NewReLU(),
		nn.NewFlatten(),
		nn.NewLinear(2*cfg.Size*cfg.Size, 1),
	)
	logger.Debug("model built", "conv", conv.String(), "parameters", len(model.Parameters()))

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LR, Momentum: 0.9})
	case "adam":
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LR})
	default:
		return 0, errors.Wrapf(tensor.ErrValue, "optimizer must be sgd or adam, got %q", cfg.Optimizer)
	}

	lossFn := functional.MSELoss
	switch cfg.Loss {
	case "mse":
	case "l1":
		lossFn = functional.L1Loss
	default:
		return 0, errors.Wrapf(tensor.ErrValue, "loss must be mse or l1, got %q", cfg.Loss)
	}

	var last float64
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		opt.ZeroGrad()
		pred, err := model.Forward(x)
		if err != nil {
			return 0, errors.WithMessagef(err, "epoch %d forward", epoch)
		}
		loss, err := lossFn(pred, y, functional.ReductionMean)
		if err != nil {
			return 0, errors.WithMessagef(err, "epoch %d loss", epoch)
		}
		if err := loss.Backward(); err != nil {
			return 0, errors.WithMessagef(err, "epoch %d backward", epoch)
		}
		opt.Step()

		last, _ = loss.Item()
		if epoch == 1 || epoch%20 == 0 || epoch == cfg.Epochs {
			logger.Info("epoch", "epoch", epoch, "loss", last, "lr", opt.GetLR())
		}
	}
	return last, nil
}

// syntheticData draws inputs (n, 1, size, size) and targets (n, 1) equal to
// the mean response of a fixed random 3x3 filter.
func syntheticData(n, size int) (*tensor.Tensor, *tensor.Tensor, error) {
	x, err := tensor.Randn(tensor.Shape{n, 1, size, size})
	if err != nil {
		return nil, nil, err
	}
	w, err := tensor.Randn(tensor.Shape{1, 1, 3, 3})
	if err != nil {
		return nil, nil, err
	}
	resp, err := functional.Conv2D(x, w, nil, functional.Conv2DConfig{})
	if err != nil {
		return nil, nil, err
	}
	flat, err := resp.Reshape(n, -1)
	if err != nil {
		return nil, nil, err
	}
	y, err := flat.MeanDim(1, true)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
