// SPDX-License-Identifier: MIT

package combinatorics

// Permutations returns every ordering of set.
//
// Definition (recursive):
//   - a one-element set has exactly one ordering, itself;
//   - otherwise, for each position i, remove set[i], permute the remaining
//     n-1 elements and prepend set[i] to each sub-ordering.
//
// Orderings are emitted grouped by their leading position, so for distinct
// elements the output is lexicographic with respect to input positions.
// Elements are compared by position only, never by value: duplicate values in
// set produce duplicate orderings.
//
// The input slice is never modified; every returned ordering owns its backing
// array.
//
// Errors:
//   - ErrEmptySet when len(set) == 0.
//   - ErrTooLarge when len(set)! overflows int.
//
// Complexity: O(n·n!) time and memory.
func Permutations[T any](set []T) ([][]T, error) {
	n := len(set)
	if n == 0 {
		return nil, ErrEmptySet
	}
	total, err := Factorial(n)
	if err != nil {
		return nil, err
	}

	out := make([][]T, 0, total)
	prefix := make([]T, 0, n)
	out = permute(set, prefix, out)

	return out, nil
}

// permute appends to out every ordering of rest, each prefixed by prefix.
// prefix is reused across siblings; completed orderings are copied.
func permute[T any](rest, prefix []T, out [][]T) [][]T {
	if len(rest) == 1 {
		perm := make([]T, len(prefix)+1)
		copy(perm, prefix)
		perm[len(prefix)] = rest[0]

		return append(out, perm)
	}

	sub := make([]T, len(rest)-1) // scratch for rest without element i
	for i := range rest {
		copy(sub, rest[:i])
		copy(sub[i:], rest[i+1:])
		out = permute(sub, append(prefix, rest[i]), out)
	}

	return out
}
