// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense. Both libraries store row-major,
// so for a *Dense the buffer is copied in one step.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrInvalidDimensions when a foreign Matrix reports a zero or negative
//     dimension (gonum panics on those).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return mat.NewDense(rows, cols, buf), nil
	}

	out := mat.NewDense(rows, cols, nil)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil input, including a typed nil *mat.Dense or
//     *mat.VecDense.
//   - ErrInvalidDimensions for an empty gonum matrix.
//   - ErrNaNInf for non-finite entries under WithValidateNaNInf.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilGonum(g) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("entry (%d,%d): %w", i, j, err))
			}
		}
	}

	return m, nil
}

// isNilGonum reports a nil interface or a typed nil of the concrete gonum
// types whose Dims dereferences the receiver.
func isNilGonum(g mat.Matrix) bool {
	switch v := g.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	}

	return false
}
