// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Thin, intention-revealing entry points. Each facade delegates to the
// canonical implementation and never changes loop order or numeric policy.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) { return NewDense(rows, cols, opts...) }

// Sum returns a + b. Alias of Add.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff returns a − b. Alias of Sub.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product returns a × b. Alias of Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T returns mᵀ. Alias of Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy returns alpha·m. Alias of Scale.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Det returns det(m). Alias of Determinant.
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }
