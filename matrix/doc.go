// Package matrix provides generic, strided dense storage for the map/reduce
// kernels in package kernels.
//
// 🚀 What is in here?
//
//	A small, dependency-light storage layer:
//	  • Dense[T]     — row-major buffer with an explicit row stride (rowSkip ≥ cols)
//	  • Matrix[T]    — the read-only surface kernels accept as a source
//	  • Allocator[T] — the allocation facility kernels use to obtain results
//	  • gonum interop — zero-copy views over *mat.Dense and back
//
// ✨ Layout:
//
//	Element (r,c) lives at offset r*rowSkip + c of the flat buffer returned by
//	Values(). Slots in [cols, rowSkip) of every row are padding: they are never
//	read or written by logical operations (At, Set, Equal, Clone, String).
//
//	    rowSkip = 4, cols = 3
//	    ┌───┬───┬───┬───┐
//	    │ a │ b │ c │ · │  row 0
//	    ├───┼───┼───┼───┤
//	    │ d │ e │ f │ · │  row 1
//	    └───┴───┴───┴───┘
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/densemap/matrix"
//
//	m, err := matrix.NewDense[float64](2, 3, matrix.WithPadding(1))
//	if err != nil {
//	  // ErrInvalidDimensions / ErrBadShape
//	}
//	_ = m.Set(1, 2, 6)
//	v, _ := m.At(1, 2) // 6
//
// Errors are package sentinels (errors.go) wrapped with call-site context;
// match them with errors.Is. Public methods never panic on user input.
//
// Dense is not safe for concurrent mutation; callers serialize access.
package matrix
