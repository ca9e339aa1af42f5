// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication and transpose. All functions perform strict fail-fast
// validation and return wrapped sentinels on dimension mismatches; none of
// them panics on user input.
//
// Every kernel takes a flat-slice fast path when all operands are *Dense and
// falls back to At/Set otherwise. Both paths use the same loop order, so
// results are bitwise identical.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opEqual       = "Equal"
	opAllClose    = "AllClose"
	opDeterminant = "Determinant"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b element-wise as a new matrix.
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: O(r*c) time and memory.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b element-wise as a new matrix. Same contract as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix of the same shape; NaN/Inf
// propagate per IEEE-754.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
//
// C has shape (a.Rows() × b.Cols()) and
//
//	C[i,j] = Σ_k A[i,k]·B[k,j]
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil operands, a.Cols() == b.Rows()).
//   - Stage 2: allocate a zeroed a.Rows()×b.Cols() Dense.
//   - Stage 3: fast path when both operands are *Dense: i-j-k loops over the
//     flat buffers (A row offset i*inner, B column stride bCols).
//   - Stage 4: otherwise the same i-j-k loops read through At.
//
// Behavior highlights:
//   - Each entry starts at ZeroSum and accumulates in increasing k.
//   - Zero factors are not skipped, so 0·Inf still yields NaN.
//   - Operands are never mutated; the result owns its buffer.
//
// Inputs:
//   - a: left operand, r×n.
//   - b: right operand, n×c.
//
// Returns:
//   - *Dense: the r×c product with the default numeric policy.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols() != b.Rows()).
//   - Any error from At on a non-Dense operand, tagged "Mul".
//
// Determinism:
//   - Both paths use the same loop order, so results are bitwise identical
//     for equal inputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		sum     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*inner + k; db.data layout: k*bCols + j.
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < inner; k++ {
						sum += da.data[rowA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	var av, bv float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// for an r×c input the result is c×r with res[j,i] = m[i,j].
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x, treating x as an n×1 column. The result rejects
// NaN/Inf on Set when either m (a *Dense) or x was built WithValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix when m or x is nil.
//   - ErrDimensionMismatch when x.Len() != m.Cols().
func MatVec(m Matrix, x *Vector) (*Vector, error) {
	if x == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	prod, err := Mul(m, x.Column())
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return &Vector{
		data:           prod.data,
		validateNaNInf: x.validateNaNInf || validatesNaNInf(m),
	}, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal
// entries under ==. NaN never equals NaN.
//
// Errors: ErrNilMatrix.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	return allWithin(a, b, 0, 0), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalised to their absolute value.
//
// Errors:
//   - ErrNaNInf for a NaN or infinite tolerance.
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return allWithin(a, b, math.Abs(rtol), math.Abs(atol)), nil
}

// allWithin assumes validated, same-shape operands.
func allWithin(a, b Matrix, rtol, atol float64) bool {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false
				}
			}

			return true
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeTo(av, bv, rtol, atol) {
				return false
			}
		}
	}

	return true
}

// closeTo treats equal infinities as close and NaN as never close.
func closeTo(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
