// SPDX-License-Identifier: MIT
// Package kernels_test contains shared fixtures for kernel tests.

package kernels_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/densemap/matrix"
)

// hide WRAPS any Matrix to hide its concrete type, forcing the At-based path.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// failingAt is a Matrix whose At fails on one cell.
type failingAt[T matrix.Number] struct {
	matrix.Matrix[T]
	badRow, badCol int
}

var errBadCell = errors.New("bad cell")

func (f failingAt[T]) At(i, j int) (T, error) {
	if i == f.badRow && j == f.badCol {
		var zero T
		return zero, errBadCell
	}

	return f.Matrix.At(i, j)
}

// mustFilled BUILDS an r×c Dense from row-major values or fails the test.
func mustFilled[T matrix.Number](tb testing.TB, r, c int, vals []T, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals, opts...)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// m3x3 is the canonical fixture [[1,2,3],[4,5,6],[7,8,9]].
func m3x3[T matrix.Number](tb testing.TB, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	return mustFilled(tb, 3, 3, []T{1, 2, 3, 4, 5, 6, 7, 8, 9}, opts...)
}

// rowOf READS row i of m as a fresh slice.
func rowOf[T matrix.Number](tb testing.TB, m *matrix.Dense[T], i int) []T {
	tb.Helper()
	row, err := m.Row(i)
	if err != nil {
		tb.Fatalf("Row(%d): %v", i, err)
	}

	return append([]T(nil), row...)
}

// colOf READS column j of m as a fresh slice.
func colOf[T matrix.Number](tb testing.TB, m *matrix.Dense[T], j int) []T {
	tb.Helper()
	out := make([]T, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		if err != nil {
			tb.Fatalf("At(%d,%d): %v", i, j, err)
		}
		out[i] = v
	}

	return out
}

// scalar READS the single cell of a 1×1 result.
func scalar[T matrix.Number](tb testing.TB, m *matrix.Dense[T]) T {
	tb.Helper()
	if m == nil || m.Rows() != 1 || m.Cols() != 1 {
		tb.Fatalf("want 1x1 result, got %v", m)
	}
	v, _ := m.At(0, 0)

	return v
}

func double(x float64) float64 { return 2 * x }

func identity[T matrix.Number](x T) T { return x }

// countingAllocator records every Create call.
type countingAllocator[T matrix.Number] struct {
	calls    int
	zeroInit []bool
	padding  int
}

func (a *countingAllocator[T]) Create(rows, cols int, zeroInit bool) (*matrix.Dense[T], error) {
	a.calls++
	a.zeroInit = append(a.zeroInit, zeroInit)
	return matrix.NewDense[T](rows, cols, matrix.WithPadding(a.padding))
}
