package cpu

import (
	"fmt"
	"math"

	"github.com/dpln-ml/dpln/internal/tensor"
)

// ReLU computes max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// ReLUMask returns 1 where x > 0 and 0 elsewhere.
func (cpu *CPUBackend) ReLUMask(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
}

// Sigmoid computes 1 / (1 + exp(-x)) without overflowing for large |x|.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, func(v float64) float64 {
		if v >= 0 {
			return 1 / (1 + math.Exp(-v))
		}
		e := math.Exp(v)
		return e / (1 + e)
	})
}

// Tanh computes the hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, math.Tanh)
}

// axisLayout splits shape around axis into (outer, n, inner) so that
// element (o, j, i) lives at (o*n+j)*inner+i.
func axisLayout(shape tensor.Shape, axis int) (outer, n, inner int) {
	if axis < 0 || axis >= len(shape) {
		panic(fmt.Sprintf("axis %d out of range for shape %v", axis, shape))
	}
	outer, inner = 1, 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	for _, d := range shape[axis+1:] {
		inner *= d
	}
	return outer, shape[axis], inner
}

// Softmax computes exp(x - max) / Σ exp(x - max) along axis.
//
// The max-shifting ensures numerical stability (prevents overflow).
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, axis int) *tensor.RawTensor {
	outer, n, inner := axisLayout(x.Shape(), axis)
	result := tensor.MustRaw(x.Shape())
	in, out := x.Data(), result.Data()

	cpu.forRows(outer*inner, func(r int) {
		o, i := r/inner, r%inner
		base := o*n*inner + i

		maxVal := math.Inf(-1)
		for j := 0; j < n; j++ {
			maxVal = math.Max(maxVal, in[base+j*inner])
		}
		sum := 0.0
		for j := 0; j < n; j++ {
			e := math.Exp(in[base+j*inner] - maxVal)
			out[base+j*inner] = e
			sum += e
		}
		for j := 0; j < n; j++ {
			out[base+j*inner] /= sum
		}
	})
	return result
}

// SoftmaxBackward contracts outputGrad with the softmax Jacobian
// diag(s) - s sᵀ along axis:
//
//	∂L/∂x_j = s_j * (∂L/∂s_j - Σ_i ∂L/∂s_i * s_i)
func (cpu *CPUBackend) SoftmaxBackward(output, outputGrad *tensor.RawTensor, axis int) *tensor.RawTensor {
	outer, n, inner := axisLayout(output.Shape(), axis)
	result := tensor.MustRaw(output.Shape())
	s, g, dx := output.Data(), outputGrad.Data(), result.Data()

	cpu.forRows(outer*inner, func(r int) {
		o, i := r/inner, r%inner
		base := o*n*inner + i

		dot := 0.0
		for j := 0; j < n; j++ {
			idx := base + j*inner
			dot += g[idx] * s[idx]
		}
		for j := 0; j < n; j++ {
			idx := base + j*inner
			dx[idx] = s[idx] * (g[idx] - dot)
		}
	})
	return result
}
