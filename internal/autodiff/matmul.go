package autodiff

import (
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// MatMulOp represents matrix multiplication over the trailing two axes:
// output = a @ b, with the leading batch axes broadcast.
//
// Backward pass:
//   - grad_a = outputGrad @ bᵀ
//   - grad_b = aᵀ @ outputGrad
//
// where ᵀ swaps the last two axes. Gradients of broadcast batch axes are
// summed back to the operand shapes.
type MatMulOp struct {
	inputs []*Tensor
}

// Name returns "matmul".
func (op *MatMulOp) Name() string { return "matmul" }

// Inputs returns [a, b].
func (op *MatMulOp) Inputs() []*Tensor { return op.inputs }

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	x, y := op.inputs[0], op.inputs[1]
	gradX := b.MatMul(outputGrad, b.Transpose(y.raw, swapLast(y.Dim())...))
	gradY := b.MatMul(b.Transpose(x.raw, swapLast(x.Dim())...), outputGrad)
	return []*tensor.RawTensor{
		b.SumTo(gradX, x.Shape()),
		b.SumTo(gradY, y.Shape()),
	}
}

// MatMul returns the matrix product t @ other.
//
// Operands of rank >= 2 multiply their trailing two axes and broadcast the
// rest:
//
//	(m, k) @ (k, n)         → (m, n)
//	(m, k) @ (bs, k, n)     → (bs, m, n)
//	(bs, m, k) @ (bs, k, n) → (bs, m, n)
//
// A 1-D operand is promoted as in NumPy: a leading 1 is prepended to t, a
// trailing 1 appended to other, and the added axis is removed from the
// result.
//
//	(k) @ (k, n) → (n)
//	(m, k) @ (k) → (m)
//	(k) @ (k)    → ()
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if err := checkOperands("matmul", t, other); err != nil {
		return nil, err
	}
	if t.Dim() == 0 || other.Dim() == 0 {
		return nil, tensor.ShapeErrorf("matmul: operands must have rank >= 1, got %v and %v", t.Shape(), other.Shape())
	}

	a, b := t, other
	promoteA, promoteB := a.Dim() == 1, b.Dim() == 1
	aShape, bShape := a.Shape(), b.Shape()
	if promoteA {
		aShape = tensor.Shape{1, aShape[0]}
	}
	if promoteB {
		bShape = tensor.Shape{bShape[0], 1}
	}
	outShape, err := tensor.MatMulShape(aShape, bShape)
	if err != nil {
		return nil, errors.WithMessage(err, "matmul")
	}

	if promoteA {
		if a, err = a.Reshape(aShape...); err != nil {
			return nil, err
		}
	}
	if promoteB {
		if b, err = b.Reshape(bShape...); err != nil {
			return nil, err
		}
	}

	out := a.backend.MatMul(a.raw, b.raw)
	inputs := []*Tensor{a, b}
	res := result(out, a.backend, inputs, func() Function { return &MatMulOp{inputs: inputs} })
	if !promoteA && !promoteB {
		return res, nil
	}

	n := len(outShape)
	final := tensor.Shape{}
	for i, d := range outShape {
		if (promoteA && i == n-2) || (promoteB && i == n-1) {
			continue
		}
		final = append(final, d)
	}
	return res.Reshape(final...)
}

// swapLast returns the permutation of ndim axes that swaps the last two.
func swapLast(ndim int) []int {
	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = i
	}
	axes[ndim-1], axes[ndim-2] = axes[ndim-2], axes[ndim-1]
	return axes
}
