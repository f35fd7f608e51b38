package tensor

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func float32Bytes(values ...float32) []byte {
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	return raw
}

func TestFromRawBytes(t *testing.T) {
	raw := float32Bytes(1, 2, 3, 4, 5, 6)

	tensor, err := FromRawBytes(raw, Shape{2, 3})
	require.NoError(t, err)
	assert.False(t, tensor.IsOwned(), "raw bytes are borrowed, not copied")
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, collect(tensor))

	v, err := tensor.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)
}

func TestFromRawBytesZeroCopy(t *testing.T) {
	raw := float32Bytes(1, 2)
	tensor, err := FromRawBytes(raw, Shape{2})
	require.NoError(t, err)

	// Writes to the external memory are visible through the tensor.
	binary.LittleEndian.PutUint32(raw[0:], math.Float32bits(42))
	v, err := tensor.At(0)
	require.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

func TestFromRawBytesShapeMismatch(t *testing.T) {
	raw := float32Bytes(1, 2, 3, 4)
	_, err := FromRawBytes(raw, Shape{5})
	assertTensorError(t, err, "raw bytes with mismatched shape")
}

func TestFromRawBytesLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FromRawBytes(make([]byte, 7), Shape{1})
	})
}

func TestBorrowedMutationGuard(t *testing.T) {
	raw := float32Bytes(1, 2, 3, 4, 5, 6)
	tensor, err := FromRawBytes(raw, Shape{2, 3})
	require.NoError(t, err)

	_, err = tensor.MutBuf()
	assertTensorError(t, err, "MutBuf on a borrowed tensor")
	_, err = tensor.MutChunk(0)
	assertTensorError(t, err, "MutChunk on a borrowed tensor")

	src := mustNew(t, []float32{7, 8, 9}, Shape{3})
	err = tensor.CopyChunk([]int{0}, src)
	assertTensorError(t, err, "CopyChunk on a borrowed tensor")

	// Reads stay fine.
	chunk, err := tensor.RefChunk(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, chunk)
}

func TestBorrowedViewsStayBorrowed(t *testing.T) {
	raw := float32Bytes(1, 2, 3, 4, 5, 6)
	tensor, err := FromRawBytes(raw, Shape{2, 3})
	require.NoError(t, err)

	row, err := tensor.Subtensor(0)
	require.NoError(t, err)
	assert.False(t, row.IsOwned())
	_, err = row.MutBuf()
	assertTensorError(t, err, "MutBuf on a borrowed subtensor")

	tr, err := tensor.Transpose(1, 0)
	require.NoError(t, err)
	assert.False(t, tr.IsOwned())

	// Materialization produces owned, mutable storage.
	mat, err := tr.Contiguous()
	require.NoError(t, err)
	assert.True(t, mat.IsOwned())
	_, err = mat.MutBuf()
	require.NoError(t, err)
}

func TestFromRawBytesF16(t *testing.T) {
	values := []float32{1, -2, 0.5, 0}
	raw := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(raw[i*2:], float16.Fromfloat32(v).Bits())
	}

	tensor, err := FromRawBytesF16(raw, Shape{2, 2})
	require.NoError(t, err)
	assert.True(t, tensor.IsOwned(), "widening always copies")
	assert.Equal(t, values, collect(tensor))
}

func TestFromRawBytesF16LengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FromRawBytesF16(make([]byte, 3), Shape{1})
	})
}
