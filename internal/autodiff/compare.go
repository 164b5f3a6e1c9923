package autodiff

import "github.com/dpln-ml/dpln/internal/tensor"

// Comparisons return 1 where the relation holds and 0 elsewhere. They are
// not differentiable, so the result is never part of the graph.

// Greater returns t > other.
func (t *Tensor) Greater(other *Tensor) (*Tensor, error) {
	return t.compare(other, tensor.OpGreater, "greater")
}

// GreaterEqual returns t >= other.
func (t *Tensor) GreaterEqual(other *Tensor) (*Tensor, error) {
	return t.compare(other, tensor.OpGreaterEqual, "greater_equal")
}

// Less returns t < other.
func (t *Tensor) Less(other *Tensor) (*Tensor, error) {
	return t.compare(other, tensor.OpLess, "less")
}

// LessEqual returns t <= other.
func (t *Tensor) LessEqual(other *Tensor) (*Tensor, error) {
	return t.compare(other, tensor.OpLessEqual, "less_equal")
}

// Equal returns t == other.
func (t *Tensor) Equal(other *Tensor) (*Tensor, error) {
	return t.compare(other, tensor.OpEqual, "equal")
}

// NotEqual returns t != other.
func (t *Tensor) NotEqual(other *Tensor) (*Tensor, error) {
	return t.compare(other, tensor.OpNotEqual, "not_equal")
}

func (t *Tensor) compare(other *Tensor, op tensor.CompareOp, name string) (*Tensor, error) {
	if err := checkBinary(name, t, other); err != nil {
		return nil, err
	}
	return New(t.backend.Compare(t.raw, other.raw, op), t.backend), nil
}
