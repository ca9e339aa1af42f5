// SPDX-License-Identifier: MIT

package combinatorics

import "errors"

var (
	// ErrEmptySet is returned when an enumeration is requested over zero elements.
	ErrEmptySet = errors.New("combinatorics: empty set")

	// ErrTooLarge is returned when n! does not fit into an int.
	ErrTooLarge = errors.New("combinatorics: set too large to enumerate")

	// ErrNegative is returned for a negative factorial argument.
	ErrNegative = errors.New("combinatorics: negative argument")

	// ErrNotPermutation indicates the slice is not a bijection of {0..n-1}.
	ErrNotPermutation = errors.New("combinatorics: not a permutation")
)
