// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package functional provides stateless neural network operations.
//
// Every function takes its weights as arguments, so the same code serves
// layers in package nn and hand-written models.
//
// Example:
//
//	y, err := functional.Conv2D(x, w, b, functional.Conv2DConfig{
//	    Stride:      functional.Pair{2, 2},
//	    Padding:     functional.Padding{{1, 1}, {1, 1}},
//	    PaddingMode: functional.PaddingReflect,
//	})
package functional

import (
	"github.com/dpln-ml/dpln/internal/nn/functional"
	"github.com/dpln-ml/dpln/tensor"
)

// Pair is a (height, width) argument such as a kernel size or stride.
type Pair = functional.Pair

// Padding holds (before, after) widths for the height and width axes.
type Padding = functional.Padding

// PaddingMode selects how Padding2D fills the border.
type PaddingMode = functional.PaddingMode

// Padding modes.
const (
	PaddingZeros     = functional.PaddingZeros
	PaddingReflect   = functional.PaddingReflect
	PaddingReplicate = functional.PaddingReplicate
	PaddingCircular  = functional.PaddingCircular
)

// Reduction selects how a loss combines per-element values.
type Reduction = functional.Reduction

// Reductions.
const (
	ReductionMean = functional.ReductionMean
	ReductionSum  = functional.ReductionSum
	ReductionNone = functional.ReductionNone
)

// Conv2DConfig holds the optional arguments of Conv2D.
type Conv2DConfig = functional.Conv2DConfig

// ParsePair accepts an int or a two-element int sequence.
func ParsePair(v any) (Pair, error) {
	return functional.ParsePair(v)
}

// ParsePadding accepts an int, a (height, width) pair or full per-side widths.
func ParsePadding(v any) (Padding, error) {
	return functional.ParsePadding(v)
}

// ParsePaddingMode parses "zeros", "reflect", "replicate" or "circular".
func ParsePaddingMode(s string) (PaddingMode, error) {
	return functional.ParsePaddingMode(s)
}

// ParseReduction parses "mean", "sum" or "none".
func ParseReduction(s string) (Reduction, error) {
	return functional.ParseReduction(s)
}

// Linear computes x @ weight + bias. bias may be nil.
func Linear(x, weight, bias *tensor.Tensor) (*tensor.Tensor, error) {
	return functional.Linear(x, weight, bias)
}

// Conv2D computes a 2D cross-correlation of x (N, C, H, W) with weight
// (C_out, C, kH, kW). bias may be nil.
func Conv2D(x, weight, bias *tensor.Tensor, cfg Conv2DConfig) (*tensor.Tensor, error) {
	return functional.Conv2D(x, weight, bias, cfg)
}

// ConvOutputSize returns the spatial output size of a convolution along one axis.
func ConvOutputSize(in, kernel, padBefore, padAfter, stride, dilation int) int {
	return functional.ConvOutputSize(in, kernel, padBefore, padAfter, stride, dilation)
}

// Padding2D pads the two trailing axes of a 4-D tensor.
func Padding2D(x *tensor.Tensor, padding Padding, mode PaddingMode) (*tensor.Tensor, error) {
	return functional.Padding2D(x, padding, mode)
}

// ReLU applies max(x, 0).
func ReLU(x *tensor.Tensor) *tensor.Tensor {
	return functional.ReLU(x)
}

// Sigmoid applies 1 / (1 + exp(-x)).
func Sigmoid(x *tensor.Tensor) *tensor.Tensor {
	return functional.Sigmoid(x)
}

// Tanh applies the hyperbolic tangent.
func Tanh(x *tensor.Tensor) *tensor.Tensor {
	return functional.Tanh(x)
}

// Softmax normalizes x along axis.
func Softmax(x *tensor.Tensor, axis int) (*tensor.Tensor, error) {
	return functional.Softmax(x, axis)
}

// L1Loss computes the absolute error between x and y.
func L1Loss(x, y *tensor.Tensor, reduction Reduction) (*tensor.Tensor, error) {
	return functional.L1Loss(x, y, reduction)
}

// MSELoss computes the squared error between x and y.
func MSELoss(x, y *tensor.Tensor, reduction Reduction) (*tensor.Tensor, error) {
	return functional.MSELoss(x, y, reduction)
}

// CrossEntropy is declared for API completeness and always returns
// ErrNotImplemented.
func CrossEntropy(x, y, weight *tensor.Tensor, reduction Reduction) (*tensor.Tensor, error) {
	return functional.CrossEntropy(x, y, weight, reduction)
}
