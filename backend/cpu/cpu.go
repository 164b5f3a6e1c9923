// Copyright 2025 DPLN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
package cpu

import (
	internalcpu "github.com/dpln-ml/dpln/internal/backend/cpu"
	"github.com/dpln-ml/dpln/internal/parallel"
	"github.com/dpln-ml/dpln/tensor"
)

// Backend represents the CPU backend implementation.
//
// Element-wise kernels fan out over goroutines for large inputs; matrix
// products go through gonum.
type Backend = internalcpu.CPUBackend

// Config configures a CPU backend.
type Config = internalcpu.Config

// ParallelConfig controls how kernels split work across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using every available CPU.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.New(raw, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.Config{Parallel: cpu.Sequential()})
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultParallel returns the parallel settings New uses.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential returns parallel settings that run every kernel on the
// calling goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}
