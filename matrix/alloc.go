// SPDX-License-Identifier: MIT

// Package matrix: allocation facility.
//
// Kernels never call NewDense directly; they go through an Allocator so the
// caller decides where result storage comes from (heap, pooled buffers,
// padded layouts). zeroInit tells the allocator whether the caller needs
// every logical element to read as zero, or will overwrite all of them.

package matrix

import "fmt"

const ctxCreate = "Create"

// Allocator creates rows×cols matrices for kernel results.
//
// Contract:
//   - Return a matrix with exactly the requested logical shape, or an error.
//   - When zeroInit is true every logical element must read as the zero value.
//   - When zeroInit is false, logical contents are unspecified; the caller
//     writes every element before exposing the matrix.
type Allocator[T Number] interface {
	Create(rows, cols int, zeroInit bool) (*Dense[T], error)
}

// AllocatorFunc adapts a plain function to the Allocator interface.
type AllocatorFunc[T Number] func(rows, cols int, zeroInit bool) (*Dense[T], error)

// Create calls f(rows, cols, zeroInit).
func (f AllocatorFunc[T]) Create(rows, cols int, zeroInit bool) (*Dense[T], error) {
	return f(rows, cols, zeroInit)
}

// HeapAllocator allocates fresh storage from the Go heap.
// Padding adds unused slots to each row (rowSkip = cols + Padding).
// The Go runtime zero-fills every allocation, so zeroInit is always satisfied.
type HeapAllocator[T Number] struct {
	Padding int
}

// Create allocates a rows×cols Dense with the configured padding.
func (h HeapAllocator[T]) Create(rows, cols int, _ bool) (*Dense[T], error) {
	if h.Padding < 0 {
		return nil, fmt.Errorf("HeapAllocator: padding %d: %w", h.Padding, ErrBadShape)
	}

	return NewDense[T](rows, cols, WithPadding(h.Padding))
}

// Create is the package entry point to the allocation facility.
// Implementation:
//   - Stage 1: fall back to HeapAllocator[T]{} when a is nil.
//   - Stage 2: delegate and verify the allocator honoured the shape contract.
//
// Errors:
//   - whatever the allocator returns (wrapped), ErrNilAllocator when it returned
//     (nil, nil), ErrDimensionMismatch when the shape is wrong.
func Create[T Number](a Allocator[T], rows, cols int, zeroInit bool) (*Dense[T], error) {
	if a == nil {
		a = HeapAllocator[T]{}
	}
	m, err := a.Create(rows, cols, zeroInit)
	if err != nil {
		return nil, matrixErrorf(ctxCreate, err)
	}
	if m == nil {
		return nil, matrixErrorf(ctxCreate, ErrNilAllocator)
	}
	if m.r != rows || m.c != cols {
		return nil, fmt.Errorf("%s: got %dx%d, want %dx%d: %w", ctxCreate, m.r, m.c, rows, cols, ErrDimensionMismatch)
	}

	return m, nil
}
