package tensor

import "iter"

// Iterator walks a tensor's elements in row-major logical order (dimension
// 0 slowest-varying, last dimension fastest), regardless of the physical
// stride layout. Each call to Iter returns a fresh, independent cursor; a
// single cursor is forward-only and consumed once.
type Iterator struct {
	t   *Tensor
	pos int
	n   int
	idx []int // scratch multi-index; nil selects the rank-1 fast path
}

// Iter returns a new iterator positioned at the first element.
func (t *Tensor) Iter() *Iterator {
	it := &Iterator{t: t, n: t.Len()}
	if len(t.shape) != 1 {
		it.idx = make([]int, len(t.shape))
	}
	return it
}

// Next returns the next element in row-major order, or false when the
// sequence is exhausted.
func (it *Iterator) Next() (float32, bool) {
	if it.pos >= it.n {
		return 0, false
	}

	// Rank-1 needs no multi-index decomposition.
	if it.idx == nil {
		v := it.t.buf[it.pos*it.t.strides[0]]
		it.pos++
		return v, true
	}

	lp := it.pos
	for i := len(it.t.shape) - 1; i >= 0; i-- {
		it.idx[i] = lp % it.t.shape[i]
		lp /= it.t.shape[i]
	}
	v := it.t.buf[it.t.bufOffset(it.idx)]
	it.pos++
	return v, true
}

// Values returns the same row-major sequence as Iter as a range-over-func
// iterator:
//
//	for v := range t.Values() { ... }
func (t *Tensor) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		it := t.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
