// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, multi-dimensional float32 tensors over
// flat buffers.
//
// # Overview
//
// A Tensor pairs a flat buffer with a shape and per-dimension strides, so
// transpose, reshape and row slicing are zero-copy metadata transforms.
// When a view's layout stops being linear in memory, Contiguous
// materializes it explicitly; nothing copies behind the caller's back.
//
// # Ownership
//
// Every tensor is in one of two buffer modes, fixed at construction:
//
//   - owned: created by New, Zeros or materialization; may be mutated.
//   - borrowed: created by FromRawBytes over externally-owned memory
//     (typically a region of a model-weight file); read-only, and valid
//     only while the external memory lives.
//
// Mutation of a borrowed tensor fails with a TensorError, never corrupts
// the shared memory.
//
// # Basic Usage
//
//	t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil { ... }
//
//	tr, _ := t.Transpose(1, 0)   // zero-copy view, shape [3 2]
//	for v := range tr.Values() { // row-major logical order: 1 4 2 5 3 6
//		...
//	}
//	mat, _ := tr.Contiguous()    // owned buffer [1 4 2 5 3 6]
package tensor
