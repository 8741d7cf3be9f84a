// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/densemap/matrix"

// mapTargeted applies fn to one row (RowMap) or one column (ColumnMap).
//
// Untouched cells follow the copy-through policy: out[r][c] = R(src[r][c]).
// The policy is the same whether out was allocated here or supplied by the
// caller, so the result never depends on what a reused buffer held before.
//
// Implementation:
//   - Stage 1: obtain out (reuse or allocate with zeroInit=false).
//   - Stage 2: single row-major pass; cells on the target row/column get fn,
//     the rest get a numeric conversion of the source value.
//
// Complexity: O(r*c) time; fn is called cols (RowMap) or rows (ColumnMap) times.
func mapTargeted[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], fn func(A) R, op Op) (*matrix.Dense[R], error) {
	tag := op.Mode.String()
	out, err := prepareResult(ctx, res, src, tag)
	if err != nil {
		return res, err
	}

	s := newSource(src)
	var in []A
	for r := 0; r < src.Rows(); r++ {
		if in, err = s.row(r); err != nil {
			return res, kernelErrorf(tag, err)
		}
		dst := resultRow(out, r)
		if op.Mode == RowMap && r == op.Index {
			for c, v := range in {
				dst[c] = fn(v)
			}
			continue
		}
		for c, v := range in {
			dst[c] = R(v) // copy-through
		}
		if op.Mode == ColumnMap {
			dst[op.Index] = fn(in[op.Index])
		}
	}

	return out, nil
}
