// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Vector tags for error wrapping.
const (
	ctxVecAt  = "At"
	ctxVecSet = "Set"
	ctxVecRef = "Ref"

	opNewVector        = "NewVector"
	opDot              = "Vector.Dot"
	opVectorFromColumn = "VectorFromColumn"
)

// vectorErrorf mirrors denseErrorf for single-index access.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a fixed-length sequence of float64, the one-dimensional form of
// Dense. Length is > 0 and never changes.
type Vector struct {
	data           []float64
	validateNaNInf bool
}

// NewVector creates a zero vector of length n.
//
// Errors: ErrInvalidDimensions when n <= 0.
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNewVector, ErrInvalidDimensions)
	}

	return &Vector{
		data:           make([]float64, n),
		validateNaNInf: gatherOptions(opts...).validateNaNInf,
	}, nil
}

// NewVectorFrom copies values into a new vector, coercing to float64.
//
// Errors:
//   - ErrInvalidDimensions for an empty slice.
//   - ErrNaNInf for non-finite values under WithValidateNaNInf.
func NewVectorFrom[T Number](values []T, opts ...Option) (*Vector, error) {
	v, err := NewVector(len(values), opts...)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		f := float64(x)
		if v.validateNaNInf && !isFinite(f) {
			return nil, vectorErrorf(ctxVecSet, i, ErrNaNInf)
		}
		v.data[i] = f
	}

	return v, nil
}

// Len returns the number of entries.
func (v *Vector) Len() int { return len(v.data) }

// At returns entry i or ErrOutOfRange unless 0 ≤ i < Len().
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at position i, honouring the numeric policy.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return vectorErrorf(ctxVecSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Ref returns a pointer to entry i for in-place updates.
func (v *Vector) Ref(i int) (*float64, error) {
	if i < 0 || i >= len(v.data) {
		return nil, vectorErrorf(ctxVecRef, i, ErrOutOfRange)
	}

	return &v.data[i], nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp, validateNaNInf: v.validateNaNInf}
}

// Column copies v into a new Len()×1 Dense.
func (v *Vector) Column() *Dense {
	return v.asDense(len(v.data), 1)
}

// Row copies v into a new 1×Len() Dense.
func (v *Vector) Row() *Dense {
	return v.asDense(1, len(v.data))
}

func (v *Vector) asDense(rows, cols int) *Dense {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Dense{r: rows, c: cols, data: cp, validateNaNInf: v.validateNaNInf}
}

// Dot returns Σ v[i]·w[i].
//
// Errors: ErrNilMatrix for nil w, ErrDimensionMismatch for different lengths.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if w == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(v.data) != len(w.data) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	sum := ZeroSum
	for i, x := range v.data {
		sum += x * w.data[i]
	}

	return sum, nil
}

// All yields the entries in index order. Restartable.
func (v *Vector) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// String renders the entries on one line, each followed by a space.
func (v *Vector) String() string {
	var b strings.Builder
	for _, x := range v.data {
		b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
		b.WriteString(_fmtEntrySep)
	}
	b.WriteString(_fmtRowEnd)

	return b.String()
}

// VectorFromColumn copies column j of m into a new vector. The vector keeps
// the numeric policy of m when m is a *Dense.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func VectorFromColumn(m Matrix, j int) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVectorFromColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opVectorFromColumn, vectorErrorf(ctxVecAt, j, ErrOutOfRange))
	}
	v := &Vector{data: make([]float64, m.Rows()), validateNaNInf: validatesNaNInf(m)}
	var err error
	for i := range v.data {
		if v.data[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opVectorFromColumn, err)
		}
	}

	return v, nil
}

// validatesNaNInf reports the numeric policy of m; only *Dense carries one.
func validatesNaNInf(m Matrix) bool {
	d, ok := m.(*Dense)

	return ok && d.validateNaNInf
}
