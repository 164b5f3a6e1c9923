// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers built on tensor autodiff.
//
// Layers implement Module: Forward maps an input tensor to an output
// tensor, and Parameters lists the trainable tensors an optimizer updates.
//
// Example:
//
//	conv, _ := nn.NewConv2D(nn.Conv2DConfig{InChannels: 1, OutChannels: 4, KernelSize: functional.Pair{3, 3}})
//	model := nn.NewSequential(
//	    conv,
//	    nn.NewReLU(),
//	    nn.NewFlatten(),
//	    nn.NewLinear(4*26*26, 10),
//	)
//	out, err := model.Forward(x)
//
// Stateless variants of every layer live in nn/functional.
package nn
