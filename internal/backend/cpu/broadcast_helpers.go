package cpu

import (
	"github.com/dpln-ml/dpln/internal/tensor"
)

// strideMap translates flat positions of a dense row-major output into flat
// positions of a source buffer. Stepping output axis ax by one moves the
// source by src[ax]; a zero entry repeats the source along that axis.
// Broadcasting and axis permutation are both expressed this way.
type strideMap struct {
	out []int // row-major strides of the output shape
	src []int // source offset per unit step of each output axis
}

// broadcastMap maps positions of outShape onto an operand of shape in that
// broadcasts to it. Leading axes missing from in and axes where in has
// size 1 get a source stride of 0.
func broadcastMap(in, outShape tensor.Shape) strideMap {
	src := make([]int, len(outShape))
	inStrides := in.ComputeStrides()
	lead := len(outShape) - len(in)
	for ax := lead; ax < len(outShape); ax++ {
		if in[ax-lead] != 1 {
			src[ax] = inStrides[ax-lead]
		}
	}
	return strideMap{out: outShape.ComputeStrides(), src: src}
}

// permuteMap maps positions of in transposed by axes back onto in.
func permuteMap(in tensor.Shape, axes []int) strideMap {
	inStrides := in.ComputeStrides()
	src := make([]int, len(axes))
	for i, ax := range axes {
		src[i] = inStrides[ax]
	}
	return strideMap{out: tensor.PermuteShape(in, axes).ComputeStrides(), src: src}
}

// index returns the source position of output position i.
func (m strideMap) index(i int) int {
	at := 0
	for ax, s := range m.out {
		at += (i / s) * m.src[ax]
		i %= s
	}
	return at
}

// unravel writes the multi-index of flat position idx into coords.
func unravel(idx int, strides []int, coords []int) {
	for i, s := range strides {
		coords[i] = idx / s
		idx %= s
	}
}
