package tensor

// PadMode selects how border values are produced by Backend.Pad.
type PadMode int

// Padding modes, named after the NumPy np.pad modes they reproduce.
const (
	PadConstant  PadMode = iota // zeros outside the input
	PadReflect                  // mirror without repeating the edge: [c b | a b c | b a]
	PadEdge                     // repeat the edge value: [a a | a b c | c c]
	PadSymmetric                // mirror including the edge: [b a | a b c | c b]
)

// String returns the NumPy name of the mode.
func (m PadMode) String() string {
	switch m {
	case PadConstant:
		return "constant"
	case PadReflect:
		return "reflect"
	case PadEdge:
		return "edge"
	case PadSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m PadMode) Valid() bool {
	return m >= PadConstant && m <= PadSymmetric
}

// CompareOp selects the relation computed by Backend.Compare.
type CompareOp int

// Element-wise relations.
const (
	OpGreater CompareOp = iota
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpEqual
	OpNotEqual
)

// Backend defines the array-math collaborator the autodiff engine runs on.
//
// Implementations allocate a fresh result for every call and never mutate
// their inputs. Shapes are validated by the caller; a backend panics when
// handed operands it cannot combine.
//
// Implementations:
//   - CPU: pure Go with gonum matrix products (internal/backend/cpu)
type Backend interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Element-wise binary operations with NumPy broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Compare returns 1 where the relation holds and 0 elsewhere.
	Compare(a, b *RawTensor, op CompareOp) *RawTensor

	// Scalar operations.
	MulScalar(x *RawTensor, s float64) *RawTensor
	AddScalar(x *RawTensor, s float64) *RawTensor

	// Element-wise math.
	Neg(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor
	Sign(x *RawTensor) *RawTensor
	Pow(x *RawTensor, p float64) *RawTensor

	// Activations.
	ReLU(x *RawTensor) *RawTensor
	ReLUMask(x *RawTensor) *RawTensor // 1 where x > 0, else 0
	Sigmoid(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	Softmax(x *RawTensor, axis int) *RawTensor
	SoftmaxBackward(output, outputGrad *RawTensor, axis int) *RawTensor

	// MatMul multiplies the trailing two axes and broadcasts the batch axes.
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, shape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	BroadcastTo(x *RawTensor, shape Shape) *RawTensor
	SumTo(x *RawTensor, shape Shape) *RawTensor

	// Reductions.
	Sum(x *RawTensor, axes []int, keepDim bool) *RawTensor

	// Pad pads each axis by widths[axis] = {before, after}.
	Pad(x *RawTensor, widths [][2]int, mode PadMode) *RawTensor
	// PadBackward is the adjoint of Pad: it crops grad back to inShape and
	// folds the contributions of mirrored/replicated border cells onto the
	// source elements they were copied from.
	PadBackward(grad *RawTensor, inShape Shape, widths [][2]int, mode PadMode) *RawTensor

	// Im2Col2D gathers sliding kh×kw patches of a (bs, c, h, w) input into
	// a (bs, outH*outW, c*kh*kw) matrix.
	Im2Col2D(x *RawTensor, kh, kw, sh, sw int) *RawTensor
	// Col2Im2D scatter-adds a column matrix back onto a (bs, c, h, w) image.
	Col2Im2D(col *RawTensor, inShape Shape, kh, kw, sh, sw int) *RawTensor
}
