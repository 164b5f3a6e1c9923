// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/dpln-ml/dpln/internal/nn"
	"github.com/dpln-ml/dpln/nn/functional"
	"github.com/dpln-ml/dpln/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// ZeroGrad clears the gradients of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewLinearNoBias creates a linear layer without a bias term.
func NewLinearNoBias(inFeatures, outFeatures int) *Linear {
	return nn.NewLinearNoBias(inFeatures, outFeatures)
}

// Conv2D represents a 2D convolutional layer.
type Conv2D = nn.Conv2D

// Conv2DConfig configures NewConv2D.
type Conv2DConfig = nn.Conv2DConfig

// NewConv2D creates a new 2D convolutional layer.
//
// Example:
//
//	conv, err := nn.NewConv2D(nn.Conv2DConfig{
//	    InChannels:  1,
//	    OutChannels: 32,
//	    KernelSize:  functional.Pair{3, 3},
//	    Padding:     functional.Padding{{1, 1}, {1, 1}},
//	})
func NewConv2D(cfg Conv2DConfig) (*Conv2D, error) {
	return nn.NewConv2D(cfg)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a container running modules in order.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the logistic activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh represents the hyperbolic tangent activation function.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation layer.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// Softmax normalizes along one axis.
type Softmax = nn.Softmax

// NewSoftmax creates a softmax layer over axis.
func NewSoftmax(axis int) *Softmax {
	return nn.NewSoftmax(axis)
}

// Flatten collapses all but the batch dimension.
type Flatten = nn.Flatten

// NewFlatten creates a new Flatten layer.
func NewFlatten() *Flatten {
	return nn.NewFlatten()
}

// Losses

// MSELoss computes the mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates an MSE loss with the given reduction.
func NewMSELoss(reduction functional.Reduction) *MSELoss {
	return nn.NewMSELoss(reduction)
}

// L1Loss computes the mean absolute error.
type L1Loss = nn.L1Loss

// NewL1Loss creates an L1 loss with the given reduction.
func NewL1Loss(reduction functional.Reduction) *L1Loss {
	return nn.NewL1Loss(reduction)
}

// Initialization

// Xavier creates a tensor with Xavier/Glorot uniform initialization.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape)
}

// Normal creates a tensor with values drawn from N(mean, std²).
func Normal(shape tensor.Shape, mean, std float64) *tensor.Tensor {
	return nn.Normal(shape, mean, std)
}
