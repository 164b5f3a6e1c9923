package cpu

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
)

// Pad pads every axis of x by widths[axis] = {before, after}.
//
// The non-constant modes follow np.pad and extend periodically, so widths
// larger than the axis are allowed:
//
//	x = [a b c], widths {2, 2}
//	constant:  [0 0 a b c 0 0]
//	reflect:   [c b a b c b a]
//	edge:      [a a a b c c c]
//	symmetric: [b a a b c c b]
func (cpu *CPUBackend) Pad(x *tensor.RawTensor, widths [][2]int, mode tensor.PadMode) *tensor.RawTensor {
	outShape := paddedShape("pad", x.Shape(), widths, mode)
	result := tensor.MustRaw(outShape)

	in, out := x.Data(), result.Data()
	walkPadded(x.Shape(), outShape, widths, mode, func(outIdx, srcIdx int) {
		out[outIdx] = in[srcIdx]
	})
	return result
}

// PadBackward crops grad to inShape and folds every border cell's gradient
// onto the element it was copied from. Interior cells map to themselves, so
// for constant padding this is a plain crop.
func (cpu *CPUBackend) PadBackward(grad *tensor.RawTensor, inShape tensor.Shape, widths [][2]int, mode tensor.PadMode) *tensor.RawTensor {
	outShape := paddedShape("pad_backward", inShape, widths, mode)
	if !outShape.Equal(grad.Shape()) {
		panic(fmt.Sprintf("pad_backward: gradient shape %v does not match padded shape %v", grad.Shape(), outShape))
	}
	result := tensor.MustRaw(inShape)

	g, dx := grad.Data(), result.Data()
	walkPadded(inShape, outShape, widths, mode, func(outIdx, srcIdx int) {
		dx[srcIdx] += g[outIdx]
	})
	return result
}

// paddedShape validates widths and returns the padded shape.
func paddedShape(name string, shape tensor.Shape, widths [][2]int, mode tensor.PadMode) tensor.Shape {
	if len(widths) != len(shape) {
		panic(fmt.Sprintf("%s: %d pad widths for rank %d", name, len(widths), len(shape)))
	}
	if !mode.Valid() {
		panic(fmt.Sprintf("%s: unknown mode %d", name, mode))
	}
	out := make(tensor.Shape, len(shape))
	for i, w := range widths {
		if w[0] < 0 || w[1] < 0 {
			panic(fmt.Sprintf("%s: negative pad width %v on axis %d", name, w, i))
		}
		if shape[i] == 0 && w[0]+w[1] > 0 && mode != tensor.PadConstant {
			panic(fmt.Sprintf("%s: cannot %s-pad empty axis %d", name, mode, i))
		}
		out[i] = shape[i] + w[0] + w[1]
	}
	return out
}

// walkPadded calls visit(outIdx, srcIdx) for every padded position that
// takes its value from an input element. Constant-mode border cells are
// skipped.
func walkPadded(inShape, outShape tensor.Shape, widths [][2]int, mode tensor.PadMode, visit func(outIdx, srcIdx int)) {
	ndim := len(inShape)
	outStrides := outShape.ComputeStrides()
	inStrides := inShape.ComputeStrides()
	coords := make([]int, ndim)

	n := outShape.NumElements()
outer:
	for i := 0; i < n; i++ {
		unravel(i, outStrides, coords)
		src := 0
		for ax := 0; ax < ndim; ax++ {
			j, ok := padSource(coords[ax]-widths[ax][0], inShape[ax], mode)
			if !ok {
				continue outer
			}
			src += j * inStrides[ax]
		}
		visit(i, src)
	}
}

// padSource maps a coordinate relative to the unpadded axis of length n
// onto the source element it copies. ok is false for constant-mode cells.
func padSource(i, n int, mode tensor.PadMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch mode {
	case tensor.PadEdge:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case tensor.PadReflect:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		j := mod(i, period)
		if j >= n {
			j = period - j
		}
		return j, true
	case tensor.PadSymmetric:
		period := 2 * n
		j := mod(i, period)
		if j >= n {
			j = period - 1 - j
		}
		return j, true
	default:
		return 0, false
	}
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
