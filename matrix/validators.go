// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense stored in the interface is treated as nil too.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Element types may differ: only the shape is compared.
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < rows.
// Returns a wrapped ErrOutOfRange naming the index and bound.
func ValidateRowIndex(rows, i int) error {
	if i < 0 || i >= rows {
		return fmt.Errorf("ValidateRowIndex: row %d not in [0,%d): %w", i, rows, ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < cols.
// Returns a wrapped ErrOutOfRange naming the index and bound.
func ValidateColIndex(cols, j int) error {
	if j < 0 || j >= cols {
		return fmt.Errorf("ValidateColIndex: col %d not in [0,%d): %w", j, cols, ErrOutOfRange)
	}

	return nil
}
