// SPDX-License-Identifier: MIT

package combinatorics

// Each streams every ordering of {0..n-1} to fn using Heap's algorithm
// (iterative form).
//
// The slice handed to fn is a single buffer that is mutated between calls;
// copy it if it must outlive the callback. Returning false from fn stops the
// enumeration early without error.
//
// Each visits exactly the same set of orderings as Permutations over
// {0..n-1}, in a different order: consecutive orderings differ by one swap.
//
// Errors:
//   - ErrEmptySet when n <= 0.
//
// Complexity: O(n!) time, O(n) memory.
func Each(n int, fn func(perm []int) bool) error {
	if n <= 0 {
		return ErrEmptySet
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if !fn(perm) {
		return nil
	}

	// c[k] is the loop counter for level k of the recursive formulation.
	c := make([]int, n)
	for k := 1; k < n; {
		if c[k] < k {
			if k%2 == 0 {
				perm[0], perm[k] = perm[k], perm[0]
			} else {
				perm[c[k]], perm[k] = perm[k], perm[c[k]]
			}
			if !fn(perm) {
				return nil
			}
			c[k]++
			k = 1

			continue
		}
		c[k] = 0
		k++
	}

	return nil
}
