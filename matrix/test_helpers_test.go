// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for storage and interop tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemap/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide[T]{X} to force generic (non-*Dense) code paths.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense[T matrix.Number](t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
func NewFilledDense[T matrix.Number](t *testing.T, r, c int, vals []T, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense[T](t, r, c, opts...)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := d.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
