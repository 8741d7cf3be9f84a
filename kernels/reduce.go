// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/densemap/matrix"

// reduce sums fn over row or column op.Index into a new 1×1 matrix.
//
// Implementation:
//   - Stage 1: accumulate from the zero value of R, in index order.
//   - Stage 2: allocate a 1×1 result (zeroInit=false, the cell is written below).
//   - Stage 3: store the sum and return the new matrix; res is never touched.
//
// Behavior highlights:
//   - Integer sums wrap on overflow (Go arithmetic).
//   - The handle is only rebound on success; on error res comes back unchanged.
//
// Complexity: O(c) for RowReduce, O(r) for ColumnReduce.
func reduce[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], fn func(A) R, op Op) (*matrix.Dense[R], error) {
	tag := op.Mode.String()
	s := newSource(src)

	var acc R
	if op.Mode == RowReduce {
		in, err := s.row(op.Index)
		if err != nil {
			return res, kernelErrorf(tag, err)
		}
		for _, v := range in {
			acc += fn(v)
		}
	} else {
		for r := 0; r < src.Rows(); r++ {
			v, err := s.at(r, op.Index)
			if err != nil {
				return res, kernelErrorf(tag, err)
			}
			acc += fn(v)
		}
	}

	out, err := matrix.Create(ctx.Allocator(), 1, 1, false)
	if err != nil {
		return res, kernelErrorf(tag, err)
	}
	resultRow(out, 0)[0] = acc

	return out, nil
}
