// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/dpln-ml/dpln/internal/tensor"

// Backend defines the array-math collaborator tensors compute on.
//
// Implementations:
//   - backend/cpu: pure Go with gonum matrix products
//
// Example:
//
//	x := tensor.New(raw, cpu.New())
type Backend = tensor.Backend
