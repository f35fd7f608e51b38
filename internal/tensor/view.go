package tensor

// At returns the element at the given coordinates, one per dimension.
// Fails with a TensorError if the number of coordinates does not match the
// rank or any coordinate is out of bounds for its dimension.
func (t *Tensor) At(idx ...int) (float32, error) {
	if len(idx) != len(t.shape) {
		return 0, errorf("invalid index %v for tensor of shape %v", idx, t.shape)
	}
	for i, dim := range idx {
		if dim < 0 || dim >= t.shape[i] {
			return 0, errorf("invalid index %v for tensor of shape %v", idx, t.shape)
		}
	}
	return t.AtUnchecked(idx...), nil
}

// AtUnchecked returns the element at the given coordinates without bounds
// checking. The caller guarantees the coordinates are valid; iteration uses
// this after deriving indices from the shape itself.
func (t *Tensor) AtUnchecked(idx ...int) float32 {
	return t.buf[t.bufOffset(idx)]
}

// bufOffset maps a multi-dimensional index to a physical buffer offset via
// the dot product with the strides.
func (t *Tensor) bufOffset(idx []int) int {
	offset := 0
	for i, dim := range idx {
		offset += dim * t.strides[i]
	}
	return offset
}

// IsContiguous reports whether the strides match the canonical row-major
// layout for the shape. A rank-0 tensor is contiguous by convention.
func (t *Tensor) IsContiguous() bool {
	if len(t.strides) == 0 {
		return true
	}
	if t.strides[len(t.strides)-1] != 1 {
		return false
	}

	lastStride := 1
	for i := len(t.shape) - 1; i >= 1; i-- {
		if t.strides[i] != lastStride {
			return false
		}
		lastStride *= t.shape[i]
	}
	return true
}

// View reinterprets the tensor under a new shape with the same number of
// elements, sharing the underlying buffer. Fails with a TensorError if the
// element counts differ or the tensor is not contiguous: reshaping a
// non-contiguous layout would produce addresses inconsistent with canonical
// strides.
//
// The result shares storage with the receiver. When the receiver owns its
// buffer, treat the receiver as consumed: using both afterwards would alias
// mutable memory.
func (t *Tensor) View(shape Shape) (*Tensor, error) {
	if shape.NumElements() != t.Len() {
		return nil, errorf("invalid shape %v for data of length %d", shape, t.Len())
	}
	if !t.IsContiguous() {
		return nil, errorf("cannot view a non-contiguous tensor")
	}
	return newChecked(t.buf, shape.Clone(), t.owned)
}

// Transpose permutes the tensor's dimensions: result dimension i takes its
// extent and stride from source dimension perm[i]. This is a pure metadata
// transform over shared storage; no elements move, and the result is
// usually non-contiguous.
//
// Fails with a TensorError unless perm is a permutation of 0..rank-1.
func (t *Tensor) Transpose(perm ...int) (*Tensor, error) {
	if len(perm) != len(t.shape) {
		return nil, errorf("invalid transpose %v for tensor of shape %v", perm, t.shape)
	}
	seen := make([]bool, len(perm))
	for _, dim := range perm {
		if dim < 0 || dim >= len(perm) || seen[dim] {
			return nil, errorf("invalid transpose %v for tensor of shape %v", perm, t.shape)
		}
		seen[dim] = true
	}

	newShape := make(Shape, len(t.shape))
	newStrides := make([]int, len(t.strides))
	for i, dim := range perm {
		newShape[i] = t.shape[dim]
		newStrides[i] = t.strides[dim]
	}
	return &Tensor{
		buf:     t.buf,
		owned:   t.owned,
		shape:   newShape,
		strides: newStrides,
		name:    t.name,
	}, nil
}

// Subtensor drops the leading dimension, returning the tensor at the given
// row. Fails with a TensorError on tensors of rank <= 1.
//
// On a contiguous source the row is a contiguous slice of exactly
// strides[0] elements. On a non-contiguous source the derived buffer runs
// from the row's start offset to the end of the source buffer; strided
// addressing only ever touches the row's own elements, but RefBuf on such a
// tensor exposes the trailing region too.
func (t *Tensor) Subtensor(row int) (*Tensor, error) {
	if len(t.shape) <= 1 {
		return nil, errorf("cannot subtensor a 1D tensor")
	}

	if t.IsContiguous() {
		offset := row * t.strides[0]
		return &Tensor{
			buf:     t.sliceBuf(offset, offset+t.strides[0]),
			owned:   t.owned,
			shape:   t.shape[1:].Clone(),
			strides: append([]int(nil), t.strides[1:]...),
			name:    t.name,
		}, nil
	}

	idx := make([]int, len(t.shape))
	idx[0] = row
	offset := t.bufOffset(idx)
	return &Tensor{
		buf:     t.sliceBuf(offset, len(t.buf)),
		owned:   t.owned,
		shape:   t.shape[1:].Clone(),
		strides: append([]int(nil), t.strides[1:]...),
		name:    t.name,
	}, nil
}

// Subtensors returns Subtensor(i) for every i along the leading dimension.
func (t *Tensor) Subtensors() ([]*Tensor, error) {
	result := make([]*Tensor, 0, t.shape[0])
	for i := 0; i < t.shape[0]; i++ {
		sub, err := t.Subtensor(i)
		if err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, nil
}

// sliceBuf derives a sub-range of the buffer for a new tensor. A borrowed
// buffer is re-sliced without copying; an owned buffer is copied, since a
// shared mutable sub-slice is not representable under the ownership model.
func (t *Tensor) sliceBuf(start, end int) []float32 {
	if !t.owned {
		return t.buf[start:end]
	}
	buf := make([]float32, end-start)
	copy(buf, t.buf[start:end])
	return buf
}

// Contiguous returns a tensor with canonical row-major layout and the same
// logical elements. An already-contiguous tensor is cheaply cloned;
// otherwise the elements are materialized in iteration order into a new
// owned buffer. This is the only operation that pays for the copy a
// transpose defers.
func (t *Tensor) Contiguous() (*Tensor, error) {
	if t.IsContiguous() {
		return t.Clone(), nil
	}

	buf := make([]float32, 0, t.Len())
	for v := range t.Values() {
		buf = append(buf, v)
	}
	return newChecked(buf, t.shape.Clone(), true)
}
