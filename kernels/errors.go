// SPDX-License-Identifier: MIT
// Package kernels: sentinel error set.
// Kernels return these sentinels (wrapped with mode/index context) or the
// matrix package sentinels they propagate (ErrNilMatrix, ErrDimensionMismatch).

package kernels

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when a row/column index is outside the
	// source bounds for a mode that requires one. The call is a no-op: no
	// result is allocated or written.
	ErrInvalidIndex = errors.New("kernels: invalid row/column index")

	// ErrUnknownMode is returned for a Mode value outside the five defined modes.
	ErrUnknownMode = errors.New("kernels: unknown mode")

	// ErrNilFunc is returned when the scalar function is nil.
	ErrNilFunc = errors.New("kernels: nil function")
)

// kernelErrorf wraps an underlying error with the given operation tag.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
