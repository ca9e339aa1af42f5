// SPDX-License-Identifier: MIT

package combinatorics

import "cmp"

// Inversions counts the pairs of positions i < j with perm[i] > perm[j].
// Every unordered pair is examined exactly once.
//
// Complexity: O(n²) time, O(1) space.
func Inversions[T cmp.Ordered](perm []T) int {
	var (
		i, j  int
		count int
	)
	for i = 0; i < len(perm); i++ {
		for j = i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				count++
			}
		}
	}

	return count
}

// Parity returns +1 when perm has an even number of inversions and -1 when
// the count is odd. The empty and single-element orderings are even.
//
// Parity is pure: it neither mutates perm nor keeps state between calls.
func Parity[T cmp.Ordered](perm []T) int {
	if Inversions(perm)%2 == 0 {
		return 1
	}

	return -1
}

// ValidatePermutation checks that perm is a bijection of {0..len(perm)-1}.
// It allocates a single marker slice of len(perm).
//
// Errors:
//   - ErrEmptySet for an empty slice.
//   - ErrNotPermutation on an out-of-range or repeated element.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int) error {
	n := len(perm)
	if n == 0 {
		return ErrEmptySet
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}
