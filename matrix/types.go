// SPDX-License-Identifier: MIT

package matrix

// Number is the set of element types accepted by the literal constructors.
// Values are coerced to float64 on ingestion.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Index is a zero-based (row, column) coordinate.
type Index struct {
	Row, Col int
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels in this package accept any implementation and take a flat-slice
// fast path when handed a *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange unless 0 ≤ i < Rows() and 0 ≤ j < Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
