// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/densemap/matrix"

// source is a read cursor over a kernel operand.
// When the operand is a *matrix.Dense it reads the flat buffer with stride
// arithmetic; otherwise every element goes through At, staged in buf.
type source[A matrix.Number] struct {
	m    matrix.Matrix[A]
	vals []A // non-nil only for *Dense operands
	skip int
	cols int
	buf  []A // row staging for the generic path
}

func newSource[A matrix.Number](m matrix.Matrix[A]) *source[A] {
	s := &source[A]{m: m, cols: m.Cols()}
	if d, ok := m.(*matrix.Dense[A]); ok {
		s.vals, s.skip = d.Values(), d.RowSkip()
	}

	return s
}

// row returns the logical elements of row r.
// The Dense path aliases storage; callers must treat the slice as read-only.
func (s *source[A]) row(r int) ([]A, error) {
	if s.vals != nil {
		base := r * s.skip
		return s.vals[base : base+s.cols], nil
	}
	if s.buf == nil {
		s.buf = make([]A, s.cols)
	}
	var err error
	for c := range s.buf {
		if s.buf[c], err = s.m.At(r, c); err != nil {
			return nil, err
		}
	}

	return s.buf, nil
}

// at returns element (r,c).
func (s *source[A]) at(r, c int) (A, error) {
	if s.vals != nil {
		return s.vals[r*s.skip+c], nil
	}

	return s.m.At(r, c)
}

// resultRow returns the writable logical elements of row r of a Dense result.
func resultRow[R matrix.Number](d *matrix.Dense[R], r int) []R {
	base := r * d.RowSkip()

	return d.Values()[base : base+d.Cols()]
}
