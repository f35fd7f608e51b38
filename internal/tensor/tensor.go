package tensor

import "fmt"

// Tensor is a strided view over a flat buffer of float32 values.
//
// The buffer is held in one of two ownership modes, fixed at construction:
//
//   - owned: the tensor holds its buffer exclusively and may mutate it.
//   - borrowed: the buffer belongs to an external allocation (typically a
//     reinterpreted byte region from a weight file) that must outlive the
//     tensor. Borrowed tensors are read-only.
//
// Logical indexing is decoupled from physical layout through per-dimension
// strides, so transpose and subtensor are metadata transforms that never
// copy elements.
type Tensor struct {
	buf     []float32
	owned   bool
	shape   Shape
	strides []int
	name    string
}

// New creates an owned tensor over buf. The tensor takes ownership of buf;
// the caller must not retain or modify it afterwards.
//
// Fails with a TensorError if len(buf) does not match the number of elements
// the shape requires. The result has canonical row-major strides and is
// contiguous.
func New(buf []float32, shape Shape) (*Tensor, error) {
	return newChecked(buf, shape.Clone(), true)
}

// Zeros creates an owned, zero-filled tensor of the given shape.
func Zeros(shape Shape) (*Tensor, error) {
	return New(make([]float32, shape.NumElements()), shape)
}

func newChecked(buf []float32, shape Shape, owned bool) (*Tensor, error) {
	if len(buf) != shape.NumElements() {
		return nil, errorf("invalid shape %v for data of length %d", shape, len(buf))
	}
	return newUnchecked(buf, shape, owned), nil
}

func newUnchecked(buf []float32, shape Shape, owned bool) *Tensor {
	return &Tensor{
		buf:     buf,
		owned:   owned,
		shape:   shape,
		strides: shape.ComputeStrides(),
	}
}

// WithName attaches a descriptive label to the tensor and returns it for
// chaining. The name never affects semantics.
func (t *Tensor) WithName(name string) *Tensor {
	t.name = name
	return t
}

// Name returns the tensor's descriptive label, or "" if none was set.
func (t *Tensor) Name() string {
	return t.name
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's per-dimension element strides.
func (t *Tensor) Strides() []int {
	return t.strides
}

// Len returns the number of logical elements (the product of the shape).
// For tensors derived from non-contiguous sources this may be smaller than
// the length of the underlying buffer.
func (t *Tensor) Len() int {
	return t.shape.NumElements()
}

// IsOwned reports whether the tensor owns its buffer exclusively.
// Only owned tensors may be mutated.
func (t *Tensor) IsOwned() bool {
	return t.owned
}

// Clone creates an independent copy of the tensor. An owned buffer is
// deep-copied; a borrowed buffer is re-borrowed, so no aliased mutable
// state is ever produced.
func (t *Tensor) Clone() *Tensor {
	buf := t.buf
	if t.owned {
		buf = make([]float32, len(t.buf))
		copy(buf, t.buf)
	}
	return &Tensor{
		buf:     buf,
		owned:   t.owned,
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
		name:    t.name,
	}
}

// Equal reports whether two tensors have the same shape and the same
// elements in row-major logical order. Strides and ownership mode are not
// compared, so a view and its materialized copy are equal.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	a, b := t.Iter(), other.Iter()
	for {
		av, aok := a.Next()
		bv, bok := b.Next()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if av != bv {
			return false
		}
	}
}

// String returns a one-line summary of the tensor.
func (t *Tensor) String() string {
	if t.name != "" {
		return fmt.Sprintf("Tensor%v(%q)", t.shape, t.name)
	}
	return fmt.Sprintf("Tensor%v", t.shape)
}
