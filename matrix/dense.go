// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, strided) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*rowSkip + j.
//   - Allow padded rows (rowSkip > cols) so foreign buffers (gonum, mmap files) can be
//     viewed without copying.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - NewDense: O(r*rowSkip) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxNew   = "NewDense"
	ctxFrom  = "NewDenseFrom"
	ctxWrap  = "WrapDense"
	ctxClone = "Clone"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix with an explicit row stride.
//   - r,c hold the logical dimensions (rows, cols).
//   - rowSkip is the distance in slots between the starts of consecutive rows (≥ c).
//   - data is a flat buffer of length ≥ (r-1)*rowSkip + c; offset(i,j) = i*rowSkip + j.
type Dense[T Number] struct {
	r, c    int // row and column counts
	rowSkip int // physical stride between rows
	data    []T // backing storage, possibly shared with a foreign owner
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Mutable[float64] = (*Dense[float64])(nil)
	_ Mutable[int32]   = (*Dense[int32])(nil)
	_ fmt.Stringer     = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve the stride from options; rowSkip < cols ⇒ ErrBadShape.
//   - Stage 3: allocate rows*rowSkip zero-filled slots.
//
// Complexity:
//   - Time O(r*rowSkip), Space O(r*rowSkip).
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	skip := o.stride(cols)
	if skip < cols {
		return nil, fmt.Errorf("%s: rowSkip %d < cols %d: %w", ctxNew, skip, cols, ErrBadShape)
	}

	return &Dense[T]{
		r:       rows,
		c:       cols,
		rowSkip: skip,
		data:    make([]T, rows*skip), // make() zero-fills deterministically
	}, nil
}

// NewDenseFrom creates an r×c matrix and fills it from values in row-major order.
// len(values) must equal rows*cols (logical elements only, no padding);
// otherwise ErrDimensionMismatch. The input slice is copied.
// Complexity: O(r*c).
func NewDenseFrom[T Number](rows, cols int, values []T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s: len(values)=%d, want %d: %w", ctxFrom, len(values), rows*cols, ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i*m.rowSkip:i*m.rowSkip+cols], values[i*cols:(i+1)*cols])
	}

	return m, nil
}

// WrapDense builds a Dense over an existing buffer without copying.
// Implementation:
//   - Stage 1: validate rows>0, cols>0 and rowSkip ≥ cols.
//   - Stage 2: require len(buf) ≥ (rows-1)*rowSkip + cols (the last row may be unpadded).
//
// Behavior highlights:
//   - Writes through the returned Dense are visible to the buffer's owner.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
func WrapDense[T Number](rows, cols, rowSkip int, buf []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxWrap, ErrInvalidDimensions)
	}
	if rowSkip < cols {
		return nil, fmt.Errorf("%s: rowSkip %d < cols %d: %w", ctxWrap, rowSkip, cols, ErrBadShape)
	}
	need := (rows-1)*rowSkip + cols
	if len(buf) < need {
		return nil, fmt.Errorf("%s: len(buf)=%d, need %d: %w", ctxWrap, len(buf), need, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, rowSkip: rowSkip, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// RowSkip returns the physical stride between consecutive rows (≥ Cols()).
func (m *Dense[T]) RowSkip() int { return m.rowSkip }

// Values exposes the backing buffer, padding included.
// Element (i,j) is Values()[i*RowSkip()+j]. Mutations are visible to m.
func (m *Dense[T]) Values() []T { return m.data }

// indexOf computes the strided offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Strided offset: i*rowSkip + j.
	return row*m.rowSkip + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a no-copy slice over the logical elements of row i (len == Cols()).
// Writes through the slice are visible to m. Padding is excluded.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.rowSkip

	return m.data[base : base+m.c : base+m.c], nil
}

// Fill sets every logical element to v; padding slots are left untouched.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.rowSkip
		for j = 0; j < m.c; j++ {
			m.data[base+j] = v
		}
	}
}

// Clone returns a deep copy with the same shape and stride.
// Padding slots are copied verbatim so the clone is byte-for-byte equivalent.
// Complexity: O(r*rowSkip).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, m.r*m.rowSkip)
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, rowSkip: m.rowSkip, data: cp}
}

// Equal reports whether other has the same shape and identical logical elements.
// Strides may differ; padding is ignored. A nil other is never equal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	if other == nil || m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	var i, j int
	if d, ok := other.(*Dense[T]); ok {
		for i = 0; i < m.r; i++ {
			a := m.data[i*m.rowSkip : i*m.rowSkip+m.c]
			b := d.data[i*d.rowSkip : i*d.rowSkip+d.c]
			for j = range a {
				if a[j] != b[j] {
					return false
				}
			}
		}
		return true
	}
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.rowSkip+j] {
				return false
			}
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Padding is never visited.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.rowSkip
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.rowSkip
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// CloneMatrix materializes any Matrix into a fresh contiguous *Dense.
// Returns ErrNilMatrix for nil input and propagates At errors.
// Complexity: O(r*c).
func CloneMatrix[T Number](src Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}
	if d, ok := src.(*Dense[T]); ok {
		return d.Clone(), nil
	}
	out, err := NewDense[T](src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			v, e := src.At(i, j)
			if e != nil {
				return nil, matrixErrorf(ctxClone, e)
			}
			out.data[i*out.rowSkip+j] = v
		}
	}

	return out, nil
}
