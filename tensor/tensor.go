// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a strided view over a flat float32 buffer.
//
// Tensor provides:
//   - Shape/stride-based logical indexing via At()
//   - Zero-copy views via Transpose(), View(), Subtensor()
//   - Explicit materialization via Contiguous()
//   - Chunk-level read/mutate access via RefChunk()/MutChunk()
type Tensor = tensor.Tensor

// Iterator is a forward-only cursor over a tensor's elements in row-major
// logical order. Obtain one with Tensor.Iter.
type Iterator = tensor.Iterator

// TensorError is the single error kind reported for recoverable contract
// violations. Branch on the type with errors.As; the message is diagnostic
// only.
type TensorError = tensor.TensorError

// Creation functions

// New creates an owned tensor over buf with canonical row-major strides.
// The tensor takes ownership of buf.
func New(buf []float32, shape Shape) (*Tensor, error) {
	return tensor.New(buf, shape)
}

// Zeros creates an owned, zero-filled tensor of the given shape.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// FromRawBytes reinterprets raw as native-endian float32 values without
// copying and returns a borrowed, read-only tensor over them. The byte
// region must outlive the tensor. len(raw) must be a multiple of 4;
// violating that panics.
func FromRawBytes(raw []byte, shape Shape) (*Tensor, error) {
	return tensor.FromRawBytes(raw, shape)
}

// FromRawBytesF16 decodes raw as little-endian float16 values and widens
// them into an owned float32 tensor. len(raw) must be a multiple of 2;
// violating that panics.
func FromRawBytesF16(raw []byte, shape Shape) (*Tensor, error) {
	return tensor.FromRawBytesF16(raw, shape)
}
