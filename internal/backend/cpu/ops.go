package cpu

import (
	"fmt"
	"math"

	"github.com/dpln-ml/dpln/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.Shape().Equal(b.Shape()) {
		result := tensor.MustRaw(a.Shape())
		floats.AddTo(result.Data(), a.Data(), b.Data())
		return result
	}
	return binaryWithBroadcast("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with NumPy-style broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.Shape().Equal(b.Shape()) {
		result := tensor.MustRaw(a.Shape())
		floats.SubTo(result.Data(), a.Data(), b.Data())
		return result
	}
	return binaryWithBroadcast("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.Shape().Equal(b.Shape()) {
		result := tensor.MustRaw(a.Shape())
		floats.MulTo(result.Data(), a.Data(), b.Data())
		return result
	}
	return binaryWithBroadcast("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with NumPy-style broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.Shape().Equal(b.Shape()) {
		result := tensor.MustRaw(a.Shape())
		floats.DivTo(result.Data(), a.Data(), b.Data())
		return result
	}
	return binaryWithBroadcast("div", a, b, func(x, y float64) float64 { return x / y })
}

// Compare evaluates an element-wise relation, producing 1 where it holds and 0 elsewhere.
func (cpu *CPUBackend) Compare(a, b *tensor.RawTensor, op tensor.CompareOp) *tensor.RawTensor {
	var rel func(x, y float64) bool
	switch op {
	case tensor.OpGreater:
		rel = func(x, y float64) bool { return x > y }
	case tensor.OpGreaterEqual:
		rel = func(x, y float64) bool { return x >= y }
	case tensor.OpLess:
		rel = func(x, y float64) bool { return x < y }
	case tensor.OpLessEqual:
		rel = func(x, y float64) bool { return x <= y }
	case tensor.OpEqual:
		rel = func(x, y float64) bool { return x == y }
	case tensor.OpNotEqual:
		rel = func(x, y float64) bool { return x != y }
	default:
		panic(fmt.Sprintf("compare: unknown op %d", op))
	}
	return binaryWithBroadcast("compare", a, b, func(x, y float64) float64 {
		if rel(x, y) {
			return 1
		}
		return 0
	})
}

// binaryWithBroadcast applies f over the broadcast of a and b.
func binaryWithBroadcast(name string, a, b *tensor.RawTensor, f func(x, y float64) float64) *tensor.RawTensor {
	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := tensor.MustRaw(outShape)
	outData := result.Data()
	aData, bData := a.Data(), b.Data()

	am := broadcastMap(a.Shape(), outShape)
	bm := broadcastMap(b.Shape(), outShape)

	for i := range outData {
		outData[i] = f(aData[am.index(i)], bData[bm.index(i)])
	}
	return result
}

// unary applies f element-wise.
func unary(x *tensor.RawTensor, f func(v float64) float64) *tensor.RawTensor {
	result := tensor.MustRaw(x.Shape())
	out := result.Data()
	for i, v := range x.Data() {
		out[i] = f(v)
	}
	return result
}

// MulScalar multiplies every element by s.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	result := x.Clone()
	floats.Scale(s, result.Data())
	return result
}

// AddScalar adds s to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	result := x.Clone()
	floats.AddConst(s, result.Data())
	return result
}

// Neg returns -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.MulScalar(x, -1)
}

// Abs returns |x|.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, math.Abs)
}

// Sign returns -1, 0 or 1 per element.
func (cpu *CPUBackend) Sign(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	})
}

// Pow raises every element to the power p.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, p float64) *tensor.RawTensor {
	switch p {
	case 1:
		return x.Clone()
	case 2:
		return unary(x, func(v float64) float64 { return v * v })
	}
	return unary(x, func(v float64) float64 { return math.Pow(v, p) })
}
