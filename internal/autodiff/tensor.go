// Package autodiff implements reverse-mode automatic differentiation over
// dense float64 arrays.
//
// A Tensor wraps a tensor.RawTensor together with its gradient state. Every
// operation on tensors that require gradients records a Function node
// linking the result to its operands; Backward walks that graph from the
// result to the leaves and accumulates gradients into each leaf's Grad.
//
// Example:
//
//	x, _ := autodiff.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//	x.RequireGrad()
//	y, _ := x.Mul(x)
//	loss, _ := y.Sum()
//	_ = loss.Backward()
//	// x.Grad() == [2 4 6]
//
// A graph is single-threaded: build it and run Backward on one goroutine.
// Independent graphs may be used concurrently.
package autodiff

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Tensor is an N-dimensional array node in the autodiff graph.
//
// Leaf tensors are created by constructors and have no GradFn. Tensors
// produced by operations carry the Function that produced them whenever
// at least one operand requires gradients.
type Tensor struct {
	raw          *tensor.RawTensor
	backend      tensor.Backend
	grad         *tensor.RawTensor
	gradFn       Function
	requiresGrad bool
	retainGrad   bool
}

// Raw returns the underlying RawTensor.
func (t *Tensor) Raw() *tensor.RawTensor {
	return t.raw
}

// Backend returns the backend the tensor computes on.
func (t *Tensor) Backend() tensor.Backend {
	return t.backend
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.raw.Shape()
}

// Dim returns the number of dimensions.
func (t *Tensor) Dim() int {
	return t.raw.Dim()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Data returns the values in row-major order.
// The slice aliases the tensor's storage.
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) float64 {
	return t.raw.At(indices...)
}

// Item returns the single value of a one-element tensor.
func (t *Tensor) Item() (float64, error) {
	if t.NumElements() != 1 {
		return 0, tensor.ShapeErrorf("item requires a single-element tensor, got shape %v", t.Shape())
	}
	return t.raw.Data()[0], nil
}

// Grad returns the accumulated gradient, or nil if no backward pass has
// reached this tensor since the last ZeroGrad.
func (t *Tensor) Grad() *tensor.RawTensor {
	return t.grad
}

// GradFn returns the Function that produced this tensor, or nil for leaves.
func (t *Tensor) GradFn() Function {
	return t.gradFn
}

// IsLeaf reports whether the tensor was created by the user rather than
// recorded by an operation.
func (t *Tensor) IsLeaf() bool {
	return t.gradFn == nil
}

// RequiresGrad reports whether gradients flow into this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// SetRequiresGrad enables or disables gradient tracking on a leaf tensor.
// Non-leaf tensors always track gradients.
func (t *Tensor) SetRequiresGrad(requires bool) error {
	if !t.IsLeaf() {
		return errors.Wrapf(tensor.ErrValue, "cannot change requires_grad of a non-leaf tensor (produced by %s)", t.gradFn.Name())
	}
	t.requiresGrad = requires
	return nil
}

// RequireGrad marks a leaf tensor as requiring gradients and returns it,
// so it can be chained onto a constructor.
func (t *Tensor) RequireGrad() *Tensor {
	if t.IsLeaf() {
		t.requiresGrad = true
	}
	return t
}

// RetainGrad makes a non-leaf tensor keep the gradient that flows through
// it during backward. Leaves always keep theirs.
func (t *Tensor) RetainGrad() *Tensor {
	t.retainGrad = true
	return t
}

// ZeroGrad clears the accumulated gradient.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}

// Detach returns a new leaf tensor sharing this tensor's data but not
// its graph. The result does not require gradients.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{raw: t.raw, backend: t.backend}
}

// String returns a short description of the tensor.
func (t *Tensor) String() string {
	fn := ""
	if t.gradFn != nil {
		fn = fmt.Sprintf(", grad_fn=%s", t.gradFn.Name())
	}
	if t.NumElements() <= 16 {
		return fmt.Sprintf("Tensor%v%v%s", t.Shape(), t.Data(), fn)
	}
	return fmt.Sprintf("Tensor%v[%d elements]%s", t.Shape(), t.NumElements(), fn)
}

// accumulateGrad adds g into t.grad, allocating zeros on first contribution.
func (t *Tensor) accumulateGrad(g *tensor.RawTensor) {
	if !g.Shape().Equal(t.Shape()) {
		panic(fmt.Sprintf("autodiff: gradient shape %v does not match tensor shape %v", g.Shape(), t.Shape()))
	}
	if t.grad == nil {
		t.grad = tensor.MustRaw(t.Shape())
	}
	floats.Add(t.grad.Data(), g.Data())
}

// result wraps out as the output of an operation on inputs. The Function
// node is built only when some input requires gradients.
func result(out *tensor.RawTensor, b tensor.Backend, inputs []*Tensor, newFn func() Function) *Tensor {
	t := &Tensor{raw: out, backend: b}
	for _, in := range inputs {
		if in.requiresGrad {
			t.requiresGrad = true
			t.gradFn = newFn()
			break
		}
	}
	return t
}

// checkOperands rejects nil operands before any kernel runs.
func checkOperands(op string, ts ...*Tensor) error {
	for i, t := range ts {
		if t == nil {
			return tensor.ValueErrorf("%s: operand %d is nil", op, i)
		}
	}
	return nil
}
