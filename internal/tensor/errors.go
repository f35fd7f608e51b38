package tensor

import "fmt"

// TensorError is the single recoverable error kind reported by this package.
// It covers every deterministic contract violation: shape/length mismatches,
// out-of-bounds indices, non-contiguous layout violations, mutation of
// borrowed memory and malformed chunk positions. The message describes the
// offending values for diagnostics; callers branch on the type, not the text.
type TensorError struct {
	Message string
}

func (e *TensorError) Error() string {
	return "tensor: " + e.Message
}

func errorf(format string, args ...any) error {
	return &TensorError{Message: fmt.Sprintf(format, args...)}
}
