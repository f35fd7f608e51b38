package tensor

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// Element sizes of the on-disk encodings accepted by the raw-bytes
// constructors.
const (
	float32Size = 4
	float16Size = 2
)

// FromRawBytes reinterprets raw as a sequence of native-endian float32
// values, without copying, and returns a borrowed tensor over them. The
// byte region must outlive the tensor and every view derived from it.
//
// len(raw) must be a multiple of 4; violating that is a caller fault and
// panics rather than returning a TensorError. A shape/length mismatch is an
// ordinary TensorError, as with New.
func FromRawBytes(raw []byte, shape Shape) (*Tensor, error) {
	if len(raw)%float32Size != 0 {
		panic(fmt.Sprintf("tensor: raw byte length %d is not a multiple of the float32 size", len(raw)))
	}
	n := len(raw) / float32Size
	var buf []float32
	if n > 0 {
		buf = unsafe.Slice((*float32)(unsafe.Pointer(&raw[0])), n)
	}
	return newChecked(buf, shape.Clone(), false)
}

// FromRawBytesF16 decodes raw as little-endian IEEE 754 half-precision
// values and widens them into an owned float32 tensor. Unlike FromRawBytes
// this always copies, since the elements change width.
//
// len(raw) must be a multiple of 2; violating that is a caller fault and
// panics.
func FromRawBytesF16(raw []byte, shape Shape) (*Tensor, error) {
	if len(raw)%float16Size != 0 {
		panic(fmt.Sprintf("tensor: raw byte length %d is not a multiple of the float16 size", len(raw)))
	}
	buf := make([]float32, len(raw)/float16Size)
	for i := range buf {
		bits := binary.LittleEndian.Uint16(raw[i*float16Size:])
		buf[i] = float16.Frombits(bits).Float32()
	}
	return newChecked(buf, shape.Clone(), true)
}
