package autodiff

import (
	"github.com/dpln-ml/dpln/internal/tensor"
	"github.com/pkg/errors"
)

// checkBinary validates the operands of a broadcasting element-wise op.
func checkBinary(op string, a, b *Tensor) error {
	if err := checkOperands(op, a, b); err != nil {
		return err
	}
	if _, err := tensor.BroadcastShapes(a.Shape(), b.Shape()); err != nil {
		return errors.WithMessage(err, op)
	}
	return nil
}
