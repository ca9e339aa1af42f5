// Package leibniz is a small dense linear-algebra library built around the
// Leibniz formula for the determinant.
//
// What is leibniz?
//
//	A pure-Go, single-threaded library that brings together:
//		• Dense matrices and vectors with bounds-checked access
//		• Elementwise Add/Sub, scalar Scale, matrix Mul, Transpose
//		• Determinant by Leibniz expansion over all n! permutations
//		• Permutation enumeration (recursive and Heap's algorithm)
//		• Permutation parity by inversion counting
//		• Interop with gonum.org/v1/gonum/mat
//
// Subpackages:
//
//	combinatorics/ — Permutations, Each, Factorial, Inversions, Parity
//	matrix/        — Dense, Vector, Vec3, arithmetic kernels, Determinant
//	examples/      — a runnable walkthrough of a 3×3 determinant
//
// Quick start:
//
//	A, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Determinant(A) // -2
//
// The determinant costs O(n!·n²) and is intended for small matrices. Inputs
// above 20×20 are rejected with combinatorics.ErrTooLarge; in practice even
// 11×11 is slow. Use gonum's LU-based mat.Det for anything larger.
package leibniz
