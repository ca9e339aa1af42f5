// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Constructor tags for error wrapping.
const (
	ctorDense     = "NewDense"
	ctorFull      = "NewFull"
	ctorIdentity  = "NewIdentity"
	ctorFromRows  = "NewFromRows"
	ctorFromSlice = "NewFromSlice"
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Public constructors forbid empty dimensions, so 0×N, N×0 and 0×0 shapes
// cannot be built.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFull creates an r×c matrix with every entry set to value.
//
// Errors:
//   - ErrInvalidDimensions on bad shape.
//   - ErrNaNInf when value is not finite and WithValidateNaNInf is set.
func NewFull(value float64, rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctorFull, err)
	}
	if m.validateNaNInf && !isFinite(value) {
		return nil, fmt.Errorf("%s: %w", ctorFull, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = value
	}

	return m, nil
}

// NewIdentity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
//
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctorIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromRows copies a literal nested grid positionally into a new Dense,
// coercing every element to float64:
//
//	m, err := matrix.NewFromRows([][]int{
//		{1, 2},
//		{3, 4},
//	})
//
// The input is never retained.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows have different lengths.
//   - ErrNaNInf for non-finite values under WithValidateNaNInf.
func NewFromRows[T Number](rows [][]T, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ctorFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctorFromRows, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctorFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = float64(rows[i][j])
			if m.validateNaNInf && !isFinite(v) {
				return nil, fmt.Errorf("%s: %w", ctorFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewFromSlice builds an r×c Dense from a flat row-major slice, the same
// layout gonum's mat.NewDense accepts. data is copied.
//
// Errors:
//   - ErrInvalidDimensions on bad shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf for non-finite values under WithValidateNaNInf.
func NewFromSlice(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctorFromSlice, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: %w", ctorFromSlice, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if !isFinite(v) {
				return nil, fmt.Errorf("%s: %w", ctorFromSlice, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
