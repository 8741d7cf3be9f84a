// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/densemap/matrix"

// mapFull computes out[r][c] = fn(src[r][c]) for every element.
// Source and result strides are walked independently, one row at a time.
// Complexity: O(r*c) time; O(1) extra space on the Dense path, O(c) otherwise.
func mapFull[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], fn func(A) R) (*matrix.Dense[R], error) {
	tag := FullMap.String()
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
		for c, v := range in {
			dst[c] = fn(v)
		}
	}

	return out, nil
}
