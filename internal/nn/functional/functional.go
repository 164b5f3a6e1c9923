// Package functional provides stateless neural-network operations composed
// from autodiff primitives.
//
// Nothing here defines its own derivative: Linear, Conv2D, Padding2D and the
// losses are built from matmul, reshape, pad, im2col and element-wise ops,
// so gradients flow through them automatically.
//
// Example:
//
//	out, err := functional.Conv2D(x, w, b, functional.Conv2DConfig{
//	    Padding:     functional.Padding{{1, 1}, {1, 1}},
//	    PaddingMode: functional.PaddingReflect,
//	})
package functional

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// Linear applies y = x @ weight + bias.
//
// weight has shape (in_features, out_features); bias, if non-nil, must be
// 1-D with out_features elements and is broadcast over the batch. A 1-D x
// is a single sample.
func Linear(x, weight, bias *autodiff.Tensor) (*autodiff.Tensor, error) {
	if weight == nil {
		return nil, tensor.ValueErrorf("linear: weight is nil")
	}
	if weight.Dim() != 2 {
		return nil, tensor.ShapeErrorf("linear: weight must be 2-D (in, out), got shape %v", weight.Shape())
	}
	if bias != nil {
		outFeatures := weight.Shape()[1]
		if bias.Dim() != 1 || bias.Shape()[0] != outFeatures {
			return nil, tensor.ShapeErrorf("linear: bias must have shape (%d), got %v", outFeatures, bias.Shape())
		}
	}

	out, err := x.MatMul(weight)
	if err != nil {
		return nil, errors.WithMessage(err, "linear")
	}
	if bias == nil {
		return out, nil
	}
	return out.Add(bias)
}

// ReLU applies max(0, x).
func ReLU(x *autodiff.Tensor) *autodiff.Tensor {
	return x.ReLU()
}

// Sigmoid applies the logistic function.
func Sigmoid(x *autodiff.Tensor) *autodiff.Tensor {
	return x.Sigmoid()
}

// Tanh applies the hyperbolic tangent.
func Tanh(x *autodiff.Tensor) *autodiff.Tensor {
	return x.Tanh()
}

// Softmax normalizes x along axis; -1 is the last axis.
func Softmax(x *autodiff.Tensor, axis int) (*autodiff.Tensor, error) {
	return x.Softmax(axis)
}
