// SPDX-License-Identifier: MIT

// Package matrix: gonum interop.
//
// gonum's *mat.Dense stores float64 values row-major with an explicit
// Stride, which is exactly the Dense[T] layout. Conversions in this file are
// zero-copy whenever the element type is float64: both sides then share one
// buffer and writes through either are visible to the other.

package matrix

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromGonum = "FromGonum"
	ctxToGonum   = "ToGonum"
)

// FromGonum returns a Dense[float64] view over g's storage, honouring g's stride.
// Returns ErrNilMatrix for nil and ErrInvalidDimensions for an empty g.
// Complexity: O(1).
func FromGonum(g *mat.Dense) (*Dense[float64], error) {
	if g == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	if g.IsEmpty() {
		return nil, matrixErrorf(ctxFromGonum, ErrInvalidDimensions)
	}
	raw := g.RawMatrix()
	d, err := WrapDense(raw.Rows, raw.Cols, raw.Stride, raw.Data)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	return d, nil
}

// ToGonum converts m into a *mat.Dense.
// Implementation:
//   - Stage 1: float64 elements ⇒ share the buffer through SetRawMatrix (no copy).
//   - Stage 2: any other element type ⇒ allocate a contiguous r×c buffer and convert.
//
// Complexity:
//   - O(1) for float64, O(r*c) otherwise.
func ToGonum[T Number](m *Dense[T]) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToGonum, ErrNilMatrix)
	}
	if f, ok := any(m).(*Dense[float64]); ok {
		var g mat.Dense
		g.SetRawMatrix(blas64.General{
			Rows:   f.r,
			Cols:   f.c,
			Stride: f.rowSkip,
			Data:   f.data,
		})
		return &g, nil
	}

	buf := make([]float64, m.r*m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.rowSkip
		for j = 0; j < m.c; j++ {
			buf[i*m.c+j] = float64(m.data[base+j])
		}
	}

	return mat.NewDense(m.r, m.c, buf), nil
}
