// SPDX-License-Identifier: MIT
// Package matrixio: sentinel error set.

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a CSV source holds no records.
	ErrEmptyInput = errors.New("matrixio: no rows")

	// ErrRagged is returned when CSV records have different field counts.
	ErrRagged = errors.New("matrixio: rows have different lengths")

	// ErrBadHeader is returned when a raw file does not start with a valid header.
	ErrBadHeader = errors.New("matrixio: malformed raw header")

	// ErrElementType is returned when a raw file stores a different element
	// type than the one requested.
	ErrElementType = errors.New("matrixio: element type mismatch")

	// ErrTruncated is returned when a raw payload is shorter than its header declares.
	ErrTruncated = errors.New("matrixio: truncated payload")
)

// cellErrorf tags a per-cell failure with its coordinates.
func cellErrorf(row, col int, err error) error {
	return fmt.Errorf("matrixio: cell (%d,%d): %w", row, col, err)
}

func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
