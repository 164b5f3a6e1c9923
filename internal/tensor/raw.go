package tensor

import "fmt"

// RawTensor is the low-level dense array: float64 values in row-major
// order plus the shape they are laid out in.
//
// RawTensor carries no gradient information; the autodiff package wraps it.
// Kernels treat their inputs as read-only and always allocate their result.
type RawTensor struct {
	data   []float64
	shape  Shape
	stride []int
}

// NewRaw allocates a zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// MustRaw is like NewRaw but panics on an invalid shape.
// Kernels use it for shapes they have already derived from valid inputs.
func MustRaw(shape Shape) *RawTensor {
	r, err := NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return r
}

// RawFromSlice creates a RawTensor holding a copy of data.
func RawFromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, ShapeErrorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	r := MustRaw(shape)
	copy(r.data, data)
	return r, nil
}

// FullRaw creates a RawTensor with every element set to value.
func FullRaw(shape Shape, value float64) *RawTensor {
	r := MustRaw(shape)
	for i := range r.data {
		r.data[i] = value
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Dim returns the rank of the tensor.
func (r *RawTensor) Dim() int {
	return len(r.shape)
}

// Data returns the underlying storage.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) At(indices ...int) float64 {
	return r.data[r.offset(indices)]
}

func (r *RawTensor) offset(indices []int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		off += idx * r.stride[i]
	}
	return off
}

// Clone returns a deep copy.
func (r *RawTensor) Clone() *RawTensor {
	c := MustRaw(r.shape)
	copy(c.data, r.data)
	return c
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	if len(r.data) <= 16 {
		return fmt.Sprintf("RawTensor%v%v", r.shape, r.data)
	}
	return fmt.Sprintf("RawTensor%v[%d elements]", r.shape, len(r.data))
}
