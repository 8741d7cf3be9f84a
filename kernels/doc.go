// Package kernels implements the dense map/reduce kernel: apply a unary
// scalar function to a whole matrix, to one row or one column, or collapse
// one row or column into a 1×1 sum.
//
// 🚀 Modes:
//
//	FullMap      — res[r][c] = f(src[r][c]) for every element
//	RowMap       — res[index][c] = f(src[index][c]); other cells copied through
//	ColumnMap    — res[r][index] = f(src[r][index]); other cells copied through
//	RowReduce    — res = [[ Σ_c f(src[index][c]) ]]
//	ColumnReduce — res = [[ Σ_r f(src[r][index]) ]]
//
// ✨ Key properties:
//   - One entry point (Map) parameterized by an explicit Op{Mode, Index}.
//   - The function is a typed func(A) R bound at compile time; there is no
//     untyped handle to reinterpret.
//   - Row strides are honoured independently for source and result, so padded
//     buffers (gonum slices, mmap'd files) are mapped in place without copies.
//   - Invalid indices are reported with ErrInvalidIndex and never allocate or
//     write a result.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/densemap/kernels"
//	  "github.com/katalvlaran/densemap/matrix"
//	)
//
//	double := func(x float64) float64 { return 2 * x }
//
//	var res *matrix.Dense[float64]
//	res, err := kernels.Map(nil, res, src, double, kernels.RowMapOp(1))
//	if errors.Is(err, kernels.ErrInvalidIndex) {
//	  // res is still nil
//	}
//
// Ownership of the result:
//
//	Map treats res as an in/out handle and returns its new value. Map modes
//	write into res when it is non-nil (same shape required) or allocate a new
//	matrix through the Context's allocator. Reduce modes ALWAYS allocate a new
//	1×1 matrix: the res passed in is neither read nor written, and callers must
//	not expect it to be the matrix returned. On error the returned pointer is
//	exactly the res that was passed in.
//
// Concurrency:
//
//	Every call is synchronous and stateless. The kernel takes no locks; callers
//	must not mutate src or res concurrently with a call.
package kernels
