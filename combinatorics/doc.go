// Package combinatorics enumerates permutations of small index sets and
// evaluates their parity.
//
// 🚀 What is inside?
//
//	The determinant engine in package matrix expands over every ordering of
//	{0..n-1}. This package supplies the two building blocks it needs:
//	  • Permutations — recursive generator returning all n! orderings
//	  • Each         — Heap's algorithm, streaming orderings with O(n) memory
//	  • Parity       — sign (+1/−1) of an ordering from its inversion count
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/leibniz/combinatorics"
//
//	perms, err := combinatorics.Permutations([]int{0, 1, 2})
//	if err != nil {
//	  // ErrEmptySet or ErrTooLarge
//	}
//	for _, p := range perms {
//	  fmt.Println(p, combinatorics.Parity(p))
//	}
//
// Performance:
//
//   - Permutations: O(n·n!) time and memory
//   - Each:         O(n!) time, O(n) memory
//   - Parity:       O(n²) comparisons, no allocations
//
// The empty set is rejected with ErrEmptySet rather than yielding a single
// empty ordering; callers in this module never enumerate an empty index set.
package combinatorics
