// Package matrix provides fixed-shape dense matrices and vectors of float64,
// the elementary operations over them, and a determinant computed by Leibniz
// expansion.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c grid with bounds-checked At/Set/Ref access.
//     Shape is fixed at construction and never changes.
//   - Constructors: NewDense (zeros), NewFull, NewIdentity, NewFromRows
//     (literal nested grid, any numeric element type), NewFromSlice.
//   - Arithmetic: Add, Sub, Scale, Mul, Transpose, MatVec. Each returns a new
//     Dense; operands are never mutated.
//   - Determinant: signed sum over all n! permutations of {0..n-1}.
//   - Vector and Vec3, convertible to column matrices.
//   - Lazy row-major iteration (All, Entries, RowValues) and text rendering.
//   - Interop with gonum.org/v1/gonum/mat (ToGonum, FromGonum).
//
// Conventions:
//
//	The first index is always the row. Storage offset is i*cols + j, and the
//	same convention drives construction, access, Transpose, Mul and
//	Determinant.
//
//	Go types cannot carry dimensions, so every binary operation checks shapes
//	at its boundary and reports ErrDimensionMismatch instead of panicking.
//	Public constructors reject zero or negative dimensions, which means a 0×0
//	matrix (and its determinant) never exists.
//
// Complexity:
//
//	Determinant runs in O(n·n!) time. It is intended for the small, fixed
//	dimensions this package targets (n ≲ 10); it is not a substitute for an
//	LU-based determinant on large inputs.
//
//	Up to MaxMaterializedOrder (9) the permutations are built as one list
//	of n! slices. Larger inputs, or any input under WithStreamingPermutations,
//	are enumerated one at a time with Heap's algorithm in O(n) memory.
//	Inputs above 20×20 fail with combinatorics.ErrTooLarge.
//
// See example_test.go for usage patterns.
package matrix
