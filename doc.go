// Package densemap applies scalar functions to dense numeric matrices: to
// every element, to one row, to one column, or as a row/column sum.
//
// 🚀 What is in densemap?
//
//	A small generic toolkit built around one kernel:
//		• matrix/   — strided Dense[T] storage, the Matrix[T] read surface,
//		              allocators and gonum interop
//		• kernels/  — Map: FullMap, RowMap, ColumnMap, RowReduce, ColumnReduce
//		• convert/  — text → number conversion (NaN for bad floats, errors for bad ints)
//		• matrixio/ — CSV and memory-mapped raw binary loaders
//		• cmd/densemap — command-line front end
//
// ✨ Why densemap?
//
//   - Generic over element and result types: func(A) R is checked at compile time
//   - Padded rows (rowSkip > cols) are first-class on both source and result
//   - Invalid indices are reported, never written or allocated
//   - Pure Go, no cgo
//
// Quick example:
//
//	    src              RowMap(1, x→2x)     RowReduce(0, x→2x)
//	    ┌───────┐        ┌──────────┐        ┌────┐
//	    │1  2  3│        │1  2   3  │        │ 12 │
//	    │4  5  6│   ⇒    │8  10  12 │        └────┘
//	    │7  8  9│        │7  8   9  │
//	    └───────┘        └──────────┘
//
//	go get github.com/katalvlaran/densemap
package densemap
