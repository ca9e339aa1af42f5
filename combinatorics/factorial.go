// SPDX-License-Identifier: MIT

package combinatorics

// MaxFactorialArg is the largest n for which n! fits into a 64-bit int.
const MaxFactorialArg = 20

// Factorial returns n! for 0 ≤ n ≤ MaxFactorialArg.
//
// Errors:
//   - ErrNegative when n < 0.
//   - ErrTooLarge when n > MaxFactorialArg.
//
// Complexity: O(n).
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxFactorialArg {
		return 0, ErrTooLarge
	}
	f := 1
	for k := 2; k <= n; k++ {
		f *= k
	}

	return f, nil
}
