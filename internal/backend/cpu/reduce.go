package cpu

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Sum reduces x over axes. An empty axes slice reduces every axis.
//
// With keepDim the reduced axes stay as size-1 dimensions; otherwise they
// are removed (reducing everything yields a 0-D scalar).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor, axes []int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	reduce := make([]bool, len(shape))
	if len(axes) == 0 {
		for i := range reduce {
			reduce[i] = true
		}
	}
	for _, ax := range axes {
		if ax < 0 || ax >= len(shape) {
			panic(fmt.Sprintf("sum: axis %d out of range for shape %v", ax, shape))
		}
		reduce[ax] = true
	}

	keptShape := make(tensor.Shape, len(shape))
	var outShape tensor.Shape
	for i, d := range shape {
		if reduce[i] {
			keptShape[i] = 1
			if keepDim {
				outShape = append(outShape, 1)
			}
			continue
		}
		keptShape[i] = d
		outShape = append(outShape, d)
	}
	if outShape == nil {
		outShape = tensor.Shape{}
	}

	if keptShape.NumElements() == 1 {
		result := tensor.MustRaw(outShape)
		result.Data()[0] = floats.Sum(x.Data())
		return result
	}

	summed := cpu.SumTo(x, keptShape)
	return cpu.Reshape(summed, outShape)
}
