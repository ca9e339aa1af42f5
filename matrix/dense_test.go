// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/leibniz/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseDefaultZero checks zero-initialisation and shape accessors.
func TestNewDenseDefaultZero(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.False(t, m.IsSquare())

	for v := range m.All() {
		require.Zero(t, v)
	}
}

// TestNewFull fills every entry with the scalar.
func TestNewFull(t *testing.T) {
	m, err := matrix.NewFull(2.5, 2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2.5, 2.5, 2.5}, {2.5, 2.5, 2.5}}, m)

	_, err = matrix.NewFull(1, 0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFull(math.Inf(1), 2, 2, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewIdentity checks the diagonal layout for several sizes.
func TestNewIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		m, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		require.True(t, m.IsSquare())
		for idx, v := range m.Entries() {
			if idx.Row == idx.Col {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}

	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRows covers coercion, ragged input and empty input.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	f32, err := matrix.NewFromRows([][]float32{{0.5}, {-1.25}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5}, {-1.25}}, f32)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewFromRowsCopies ensures the literal is not retained.
func TestNewFromRowsCopies(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestNewFromSlice checks flat row-major ingestion.
func TestNewFromSlice(t *testing.T) {
	m, err := matrix.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.NewFromSlice(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromSlice(1, 2, []float64{1, math.Inf(-1)}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfBounds ensures At/Set/Ref return ErrOutOfRange on every
// invalid coordinate, including the row == Rows() and col == Cols() edges.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 3)

	bad := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}, {5, 5}}
	for _, ij := range bad {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])

		err = m.Set(ij[0], ij[1], 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", ij[0], ij[1])

		p, err := m.Ref(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Ref(%d,%d)", ij[0], ij[1])
		require.Nil(t, p)
	}

	// Last valid cell is reachable.
	_, err := m.At(1, 2)
	require.NoError(t, err)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestRefMutation checks that writes through Ref land in the matrix.
func TestRefMutation(t *testing.T) {
	m := MustDense(t, 2, 2)
	p, err := m.Ref(1, 0)
	require.NoError(t, err)
	*p = 4
	*p += 0.5
	require.Equal(t, 4.5, MustAt(t, m, 1, 0))
}

// TestSetNumericPolicy checks the optional NaN/Inf guard.
func TestSetNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	// Clone preserves the policy.
	require.ErrorIs(t, strict.Clone().Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	lax, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Set(0, 0, math.NaN()))
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestStringOutput checks the row-per-line rendering.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "1 2.5 \n-3 0 \n", m.String())

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.Equal(t, "1 0 \n0 1 \n", id.String())
}
