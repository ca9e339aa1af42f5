// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/leibniz/combinatorics"

// MaxMaterializedOrder is the largest n for which Determinant builds the full
// list of n! permutations. Above it the streaming enumeration is used
// regardless of options: 10! orderings of 10 ints already take ~400 MB.
const MaxMaterializedOrder = 9

// Determinant computes det(m) by Leibniz expansion:
//
//	det(m) = Σ_σ sgn(σ) · Π_{i=0}^{n-1} m[σ(i), i]
//
// where σ ranges over all n! permutations of {0..n-1} and sgn(σ) is the
// parity of its inversion count. Each product takes exactly one entry from
// every column i, drawn from row σ(i), so every row and column contributes
// one factor.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil. Non-square input is rejected before any work.
//   - Stage 2: guard n! with combinatorics.Factorial (n ≤ 20).
//   - Stage 3: pick the enumeration. combinatorics.Permutations over the index
//     set when n ≤ MaxMaterializedOrder and streaming was not requested;
//     combinatorics.Each (Heap's algorithm) otherwise.
//   - Stage 4: for every σ, multiply m[σ(i), i] for i = 0..n-1 in increasing i,
//     then accumulate sum += sgn(σ)·product in enumeration order.
//
// Behavior highlights:
//   - A 1×1 matrix yields its single entry (one permutation, parity +1).
//   - NaN/Inf entries propagate per IEEE-754; zero entries are not skipped.
//   - The input is never mutated.
//
// Inputs:
//   - m: any Matrix; *Dense is read from its flat buffer, others via At.
//   - opts: WithStreamingPermutations forces the O(n) memory enumeration.
//
// Returns:
//   - float64: the determinant.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrNonSquare when m.Rows() != m.Cols().
//   - combinatorics.ErrTooLarge when n! overflows int (n > 20).
//
// Determinism:
//   - For a fixed n and strategy the summation order is fixed, so repeated
//     calls are bitwise identical. The two strategies visit permutations in
//     different orders and may differ in the last bits on non-integer input.
//
// Complexity:
//   - Time O(n·n!) plus O(n²) parity per permutation. This is a known
//     limitation of the textbook formula; n = 10 already visits 3.6M
//     permutations.
//   - Memory O(n·n!) on the materialized path, O(n) when streaming.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if _, err := combinatorics.Factorial(n); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	at := entryReader(m)
	sum := ZeroSum
	term := func(perm []int) {
		product := 1.0
		for i := 0; i < n; i++ {
			product *= at(perm[i], i)
		}
		sum += float64(combinatorics.Parity(perm)) * product
	}

	if o.streaming || n > MaxMaterializedOrder {
		err := combinatorics.Each(n, func(perm []int) bool {
			term(perm)
			return true
		})
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}

		return sum, nil
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	perms, err := combinatorics.Permutations(indices)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	for _, perm := range perms {
		term(perm)
	}

	return sum, nil
}

// entryReader returns an unchecked (row, col) reader for a validated matrix.
// *Dense reads the flat buffer directly; other implementations go through At,
// whose error cannot fire for in-range indices.
func entryReader(m Matrix) func(row, col int) float64 {
	if d, ok := m.(*Dense); ok {
		return func(row, col int) float64 { return d.data[row*d.c+col] }
	}

	return func(row, col int) float64 {
		v, _ := m.At(row, col)
		return v
	}
}
