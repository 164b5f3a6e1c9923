package autodiff

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// Backward computes gradients of t with respect to every leaf that requires
// gradients, seeding with 1. t must hold exactly one element.
//
// Gradients accumulate: calling Backward twice on freshly built graphs
// doubles each leaf's Grad. Call ZeroGrad (or an optimizer's ZeroGrad)
// between steps.
func (t *Tensor) Backward() error {
	if t.NumElements() != 1 {
		return tensor.ShapeErrorf("backward without a seed requires a single-element tensor, got shape %v", t.Shape())
	}
	return t.backward(tensor.FullRaw(t.Shape(), 1))
}

// BackwardWith runs backward seeded with an explicit output gradient, which
// must have t's shape. A nil seed behaves like Backward.
func (t *Tensor) BackwardWith(seed *Tensor) error {
	if seed == nil {
		return t.Backward()
	}
	if !seed.Shape().Equal(t.Shape()) {
		return tensor.ShapeErrorf("backward seed shape %v does not match tensor shape %v", seed.Shape(), t.Shape())
	}
	return t.backward(seed.raw.Clone())
}

func (t *Tensor) backward(seed *tensor.RawTensor) error {
	if !t.requiresGrad {
		return errors.Wrapf(tensor.ErrNoGrad, "backward on tensor of shape %v", t.Shape())
	}
	if t.gradFn == nil {
		t.accumulateGrad(seed)
		return nil
	}
	if t.retainGrad {
		t.accumulateGrad(seed)
	}

	root := t.gradFn
	pending := dependencies(root)
	buffers := map[Function]*tensor.RawTensor{root: seed}
	ready := []Function{root}

	for len(ready) > 0 {
		fn := ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		outGrad := buffers[fn]
		delete(buffers, fn)

		inputs := fn.Inputs()
		grads := fn.Backward(outGrad, t.backend)
		if len(grads) != len(inputs) {
			panic(fmt.Sprintf("autodiff: %s returned %d gradients for %d inputs", fn.Name(), len(grads), len(inputs)))
		}

		for i, in := range inputs {
			g := grads[i]
			if g == nil || !in.requiresGrad {
				continue
			}
			if in.gradFn == nil {
				in.accumulateGrad(g)
				continue
			}
			if in.retainGrad {
				in.accumulateGrad(g)
			}

			parent := in.gradFn
			if buf, ok := buffers[parent]; ok {
				buffers[parent] = t.backend.Add(buf, g)
			} else {
				buffers[parent] = g
			}
			pending[parent]--
			if pending[parent] == 0 {
				ready = append(ready, parent)
			}
		}
	}
	return nil
}

// dependencies walks every Function reachable from root and counts, for each
// node, the edges pointing at it from other reachable nodes. A node is ready
// for backward once all of those edges have delivered their gradient.
func dependencies(root Function) map[Function]int {
	pending := map[Function]int{root: 0}
	stack := []Function{root}
	for len(stack) > 0 {
		fn := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, in := range fn.Inputs() {
			if !in.requiresGrad || in.gradFn == nil {
				continue
			}
			parent := in.gradFn
			if _, seen := pending[parent]; !seen {
				stack = append(stack, parent)
			}
			pending[parent]++
		}
	}
	return pending
}
