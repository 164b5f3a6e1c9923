// Package cpu implements the array-math collaborator on the CPU: broadcasting
// element-wise arithmetic, gonum-backed matrix products, padding, and the
// im2col/col2im gather-scatter pair used by convolution.
package cpu

import (
	"github.com/dpln-ml/dpln/internal/parallel"
	"github.com/dpln-ml/dpln/internal/tensor"
)

// CPUBackend implements tensor.Backend in pure Go.
type CPUBackend struct {
	par parallel.Config
}

// Config configures a CPUBackend.
type Config struct {
	// Parallel controls fan-out inside kernels. The zero value runs
	// every kernel on the calling goroutine.
	Parallel parallel.Config
}

// New creates a CPU backend with parallel.DefaultConfig.
func New() *CPUBackend {
	return &CPUBackend{par: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU backend with an explicit configuration.
func NewWithConfig(cfg Config) *CPUBackend {
	if cfg.Parallel.NumWorkers <= 0 {
		cfg.Parallel.NumWorkers = 1
	}
	if cfg.Parallel.MinChunkSize <= 0 {
		cfg.Parallel.MinChunkSize = 1
	}
	return &CPUBackend{par: cfg.Parallel}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

var _ tensor.Backend = (*CPUBackend)(nil)

// forRows runs f for every i in [0, n) using the backend's parallel config.
func (cpu *CPUBackend) forRows(n int, f func(i int)) {
	parallel.For(n, f, cpu.par)
}

// forBatch runs f over the batch×channels grid using the backend's parallel config.
func (cpu *CPUBackend) forBatch(batch, channels int, f func(b, c int)) {
	parallel.ForBatch(batch, channels, f, cpu.par)
}
