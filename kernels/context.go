// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/densemap/matrix"

const (
	panicAllocatorNil    = "kernels: WithAllocator: allocator must not be nil"
	panicPaddingNegative = "kernels: WithResultPadding: padding must be >= 0"
)

// Context carries the per-call environment of a kernel.
// Its only duty today is to supply result storage; a nil *Context is valid
// and allocates from the heap with contiguous rows.
type Context[R matrix.Number] struct {
	alloc matrix.Allocator[R]
}

// Option configures a Context.
type Option[R matrix.Number] func(*Context[R])

// NewContext builds a Context from options applied in order (last writer wins).
func NewContext[R matrix.Number](opts ...Option[R]) *Context[R] {
	c := &Context[R]{}
	for _, set := range opts {
		if set != nil {
			set(c)
		}
	}

	return c
}

// WithAllocator routes result allocation through a.
// Panics when a is nil (programmer error).
func WithAllocator[R matrix.Number](a matrix.Allocator[R]) Option[R] {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(c *Context[R]) { c.alloc = a }
}

// WithResultPadding allocates results on the heap with p padding slots per row.
// Panics when p < 0.
func WithResultPadding[R matrix.Number](p int) Option[R] {
	if p < 0 {
		panic(panicPaddingNegative)
	}

	return func(c *Context[R]) { c.alloc = matrix.HeapAllocator[R]{Padding: p} }
}

// Allocator returns the effective allocator (heap when unset or c is nil).
func (c *Context[R]) Allocator() matrix.Allocator[R] {
	if c == nil || c.alloc == nil {
		return matrix.HeapAllocator[R]{}
	}

	return c.alloc
}
