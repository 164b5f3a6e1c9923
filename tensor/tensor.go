// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the dense storage behind a Tensor, without gradient state.
type RawTensor = tensor.RawTensor

// Tensor is an N-dimensional array node in the autodiff graph.
//
// Example:
//
//	x := tensor.MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}).RequireGrad()
//	y, _ := x.Pow(2)
//	loss, _ := y.Sum()
//	_ = loss.Backward() // x.Grad() == [2 4 6]
type Tensor = autodiff.Tensor

// Function is a recorded operation in the autodiff graph.
type Function = autodiff.Function

// PadMode selects how Pad fills the border.
type PadMode = tensor.PadMode

// Padding modes.
const (
	PadConstant  PadMode = tensor.PadConstant
	PadReflect   PadMode = tensor.PadReflect
	PadEdge      PadMode = tensor.PadEdge
	PadSymmetric PadMode = tensor.PadSymmetric
)

// Error kinds returned by tensor operations.
var (
	ErrShape          = tensor.ErrShape
	ErrValue          = tensor.ErrValue
	ErrNotImplemented = tensor.ErrNotImplemented
	ErrNoGrad         = tensor.ErrNoGrad
)

// DefaultBackend returns the backend used by constructors that do not take one.
func DefaultBackend() Backend {
	return autodiff.DefaultBackend()
}

// New wraps raw as a leaf tensor. A nil backend selects the CPU backend.
func New(raw *RawTensor, backend Backend) *Tensor {
	return autodiff.New(raw, backend)
}

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return autodiff.FromSlice(data, shape)
}

// MustFromSlice is like FromSlice but panics on a length mismatch.
func MustFromSlice(data []float64, shape Shape) *Tensor {
	return autodiff.MustFromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return autodiff.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return autodiff.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return autodiff.Full(shape, value)
}

// Scalar creates a 0-D tensor.
func Scalar(value float64) *Tensor {
	return autodiff.Scalar(value)
}

// Randn creates a tensor with values drawn from the standard normal distribution.
func Randn(shape Shape) (*Tensor, error) {
	return autodiff.Randn(shape)
}

// Rand creates a tensor with values drawn uniformly from [low, high).
func Rand(shape Shape, low, high float64) (*Tensor, error) {
	return autodiff.Rand(shape, low, high)
}

// BroadcastShapes returns the shape two operands broadcast to.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
