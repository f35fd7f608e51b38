package tensor

import "fmt"

// RefBuf returns the raw underlying buffer.
//
// WARNING: for tensors derived from a non-contiguous source via Subtensor,
// the buffer extends past the tensor's own elements; prefer Iter for
// logical access.
func (t *Tensor) RefBuf() []float32 {
	return t.buf
}

// MutBuf returns the underlying buffer for in-place writes. Fails with a
// TensorError when the buffer is borrowed: externally-owned memory is
// read-only.
func (t *Tensor) MutBuf() ([]float32, error) {
	if !t.owned {
		return nil, errorf("cannot mutate a borrowed tensor")
	}
	return t.buf, nil
}

// RefChunk returns a read-only view of the contiguous sub-block selected by
// a prefix of leading-dimension coordinates: for pos of length k, the block
// spans strides[k-1] elements starting at the dot product of pos with the
// strides (one "row" of the trailing dimensions).
//
// Fails with a TensorError if the tensor is not contiguous or the position
// is malformed: it must leave at least one trailing dimension free.
func (t *Tensor) RefChunk(pos ...int) ([]float32, error) {
	if !t.IsContiguous() {
		return nil, errorf("tensor must be contiguous to take a chunk")
	}
	if err := t.checkChunkPos(pos); err != nil {
		return nil, err
	}
	start, end := t.chunkRange(pos)
	return t.buf[start:end], nil
}

// MutChunk returns the same sub-block as RefChunk as a writable slice.
// In addition to RefChunk's preconditions, it fails with a TensorError when
// the buffer is borrowed.
func (t *Tensor) MutChunk(pos ...int) ([]float32, error) {
	if !t.IsContiguous() {
		return nil, errorf("tensor must be contiguous to take a chunk")
	}
	if !t.owned {
		return nil, errorf("cannot mutate a borrowed tensor")
	}
	if err := t.checkChunkPos(pos); err != nil {
		return nil, err
	}
	start, end := t.chunkRange(pos)
	return t.buf[start:end], nil
}

// CopyChunk overwrites the chunk at pos with src's flat buffer contents.
// It fails under the same conditions as MutChunk. A length mismatch between
// the chunk and src is a caller fault and panics.
func (t *Tensor) CopyChunk(pos []int, src *Tensor) error {
	dst, err := t.MutChunk(pos...)
	if err != nil {
		return err
	}
	if len(dst) != len(src.RefBuf()) {
		panic(fmt.Sprintf("tensor: chunk of %d elements cannot be copied from buffer of %d", len(dst), len(src.RefBuf())))
	}
	copy(dst, src.RefBuf())
	return nil
}

func (t *Tensor) checkChunkPos(pos []int) error {
	// The block spans strides[len(pos)-1] elements, so the position must be
	// non-empty and leave at least one trailing dimension.
	if len(pos) == 0 || len(pos) >= len(t.shape) {
		return errorf("invalid chunk position %v for tensor of shape %v", pos, t.shape)
	}
	for i, p := range pos {
		if p < 0 || p >= t.shape[i] {
			return errorf("invalid chunk position %v for tensor of shape %v", pos, t.shape)
		}
	}
	return nil
}

func (t *Tensor) chunkRange(pos []int) (int, int) {
	start := 0
	for i, p := range pos {
		start += p * t.strides[i]
	}
	return start, start + t.strides[len(pos)-1]
}
