// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API of the DPLN library.
//
// # Overview
//
// A Tensor is a dense, row-major N-dimensional array of float64 values
// that can take part in reverse-mode automatic differentiation:
//   - NumPy-style broadcasting for element-wise operations
//   - Batched matrix products
//   - Reshape, transpose, pad, reductions and activations
//   - im2col patch extraction for convolutions
//
// # Basic Usage
//
//	x := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}).RequireGrad()
//	y, _ := x.MatMul(x)
//	loss, _ := y.Sum()
//	if err := loss.Backward(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Grad())
//
// # Broadcasting
//
// Element-wise operations follow NumPy broadcasting rules:
//
//	a, _ := tensor.Zeros(tensor.Shape{3, 1}) // (3, 1)
//	b, _ := tensor.Ones(tensor.Shape{3, 4})  // (3, 4)
//	c, _ := a.Add(b)                         // (3, 4)
//
// Gradients flowing back through a broadcast are summed over the
// broadcast axes, so every gradient has its operand's shape.
//
// # Errors
//
// Operations validate their operands before computing anything and return
// errors wrapping one of ErrShape, ErrValue, ErrNotImplemented or
// ErrNoGrad. Use errors.Is to classify them.
package tensor
