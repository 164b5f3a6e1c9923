package cpu

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
)

// Reshape returns a copy of x laid out with a new shape of the same size.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if shape.NumElements() != x.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			x.Shape(), x.NumElements(), shape, shape.NumElements()))
	}
	result := tensor.MustRaw(shape)
	copy(result.Data(), x.Data())
	return result
}

// Transpose permutes the axes of x. With no axes the order is reversed.
//
// Example:
//
//	x: [2, 3, 4], axes (0, 2, 1) → [2, 4, 3]
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if err := tensor.ValidatePermutation(axes, ndim); err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	outShape := tensor.PermuteShape(shape, axes)
	result := tensor.MustRaw(outShape)

	src := permuteMap(shape, axes)
	in, out := x.Data(), result.Data()
	for i := range out {
		out[i] = in[src.index(i)]
	}
	return result
}

// BroadcastTo expands x to shape following NumPy broadcasting rules.
func (cpu *CPUBackend) BroadcastTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	got, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !got.Equal(shape) {
		panic(fmt.Sprintf("broadcast: cannot broadcast %v to %v", x.Shape(), shape))
	}
	if x.Shape().Equal(shape) {
		return x.Clone()
	}

	result := tensor.MustRaw(shape)
	src := broadcastMap(x.Shape(), shape)
	in, out := x.Data(), result.Data()
	for i := range out {
		out[i] = in[src.index(i)]
	}
	return result
}

// SumTo reduces x to shape by summing over the axes that broadcasting
// expanded. It is the adjoint of BroadcastTo.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: SumTo(grad_c[3,4], [3,1]) -> grad_a[3,1]
func (cpu *CPUBackend) SumTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if x.Shape().Equal(shape) {
		return x.Clone()
	}
	got, err := tensor.BroadcastShapes(shape, x.Shape())
	if err != nil || !got.Equal(x.Shape()) {
		panic(fmt.Sprintf("sum_to: %v is not broadcastable to %v", shape, x.Shape()))
	}

	result := tensor.MustRaw(shape)
	dst := broadcastMap(shape, x.Shape())
	in, out := x.Data(), result.Data()
	for i, v := range in {
		out[dst.index(i)] += v
	}
	return result
}
