// SPDX-License-Identifier: MIT
// Package kernels - entry points and mode dispatch.
//
// Purpose:
//   - One kernel, one calling convention: Map(ctx, res, src, fn, op).
//   - Validate everything before touching res, so invalid calls never allocate
//     or partially write a result.
//
// Determinism:
//   - Fixed row-major loop orders; fn is called once per visited element.

package kernels

import "github.com/katalvlaran/densemap/matrix"

// Map applies fn to src according to op and returns the new value of the
// result handle.
//
// Implementation:
//   - Stage 1 (Validate): src non-nil, fn non-nil, op.Mode known, op.Index in bounds.
//   - Stage 2 (Dispatch): FullMap → mapFull; RowMap/ColumnMap → mapTargeted;
//     RowReduce/ColumnReduce → reduce.
//
// Behavior highlights:
//   - Map modes reuse res when non-nil (its shape must equal src's, else
//     matrix.ErrDimensionMismatch) or allocate through ctx.
//   - RowMap/ColumnMap copy every untouched cell through: res[r][c] = R(src[r][c]).
//   - Reduce modes always return a freshly allocated 1×1 matrix; res is ignored.
//   - On any error the returned pointer is exactly res as received.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNilFunc, ErrUnknownMode, ErrInvalidIndex,
//     matrix.ErrDimensionMismatch, allocator errors, and At errors from
//     non-Dense sources.
//
// Complexity:
//   - FullMap O(r*c); RowMap/ColumnMap O(r*c) (copy-through); reduce O(c) or O(r).
func Map[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], fn func(A) R, op Op) (*matrix.Dense[R], error) {
	tag := op.Mode.String()
	if err := matrix.ValidateNotNil(src); err != nil {
		return res, kernelErrorf(tag, err)
	}
	if fn == nil {
		return res, kernelErrorf(tag, ErrNilFunc)
	}
	if err := op.Validate(src.Rows(), src.Cols()); err != nil {
		return res, err
	}

	switch op.Mode {
	case FullMap:
		return mapFull(ctx, res, src, fn)
	case RowMap, ColumnMap:
		return mapTargeted(ctx, res, src, fn, op)
	default: // RowReduce, ColumnReduce; Validate rejected everything else
		return reduce(ctx, res, src, fn, op)
	}
}

// Apply is the flag-form entry point:
//   - isMatrix=false reduces row (isRow) or column index into a 1×1 sum;
//   - isMatrix=true maps row (isRow) or column index.
//
// See OpFromFlags and Map for the full contract.
func Apply[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], fn func(A) R, isMatrix, isRow bool, index int64) (*matrix.Dense[R], error) {
	return Map(ctx, res, src, fn, OpFromFlags(isMatrix, isRow, index))
}

// MapAll is the elementwise-only form: Map with FullMapOp().
func MapAll[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], fn func(A) R) (*matrix.Dense[R], error) {
	return Map(ctx, res, src, fn, FullMapOp())
}

// prepareResult returns the matrix a map mode writes into.
// Implementation:
//   - Stage 1: res != nil ⇒ require same shape as src and reuse it.
//   - Stage 2: res == nil ⇒ allocate rows×cols through ctx with zeroInit=false
//     (every map mode writes every element).
func prepareResult[R, A matrix.Number](ctx *Context[R], res *matrix.Dense[R], src matrix.Matrix[A], tag string) (*matrix.Dense[R], error) {
	if res != nil {
		if err := matrix.ValidateSameShape(res, src); err != nil {
			return nil, kernelErrorf(tag, err)
		}
		return res, nil
	}
	out, err := matrix.Create(ctx.Allocator(), src.Rows(), src.Cols(), false)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}

	return out, nil
}
