// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, allocators and kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Number is the set of scalar element types a Dense may hold.
// It covers every signed/unsigned integer width and both float widths;
// complex values are excluded because kernels accumulate with ordered types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Shaped is anything with a row and column count.
// It lets shape checks compare matrices of different element types.
type Shaped interface {
	Rows() int
	Cols() int
}

// Matrix is the read surface of a two-dimensional numeric container.
//
// Kernels accept any Matrix as a source. *Dense[T] additionally unlocks
// flat-buffer fast paths; other implementations are visited through At.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// Mutable extends Matrix with element writes.
type Mutable[T Number] interface {
	Matrix[T]

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}
