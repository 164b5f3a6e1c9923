// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff exposes the reverse-mode differentiation engine.
//
// Operations on tensors that require gradients record a Function node
// linking the result to its operands. Backward walks that graph from the
// result back to the leaves without recursion, so arbitrarily deep graphs
// are safe, and accumulates gradients into each leaf's Grad.
//
// Example:
//
//	x := tensor.MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}).RequireGrad()
//	y, _ := x.Mul(x)
//	loss, _ := y.Sum()
//	_ = loss.Backward()
//	fmt.Println(x.Grad()) // [2 4 6]
//
// Gradients accumulate across backward passes; clear them with ZeroGrad.
package autodiff

import (
	"github.com/dpln-ml/dpln/internal/autodiff"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// Function is a node in the computation graph that maps the gradient of
// its output onto the gradients of its inputs.
type Function = autodiff.Function

// Backward runs backward from t, which must hold a single element.
func Backward(t *autodiff.Tensor) error {
	return t.Backward()
}

// BackwardWith runs backward from t seeded with an explicit gradient
// shaped like t.
func BackwardWith(t, seed *autodiff.Tensor) error {
	return t.BackwardWith(seed)
}

// Grad returns the gradient accumulated on t, or nil.
func Grad(t *autodiff.Tensor) *tensor.RawTensor {
	return t.Grad()
}
