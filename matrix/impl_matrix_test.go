// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/matrix"
)

func TestWithElements_IncompleteRow_ReportsMissing(t *testing.T) {
	t.Parallel()

	m, err := matrix.WithElements(5, Span(1, 7))
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrIncompleteRow)

	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Missing)
	assert.Equal(t, 5, se.Width)
	assert.Equal(t, 7, se.Len)
	assert.Equal(t, "WithElements", se.Op)
	assert.Contains(t, err.Error(), "3 element(s) missing")
	assert.NotContains(t, err.Error(), "ValidateWidth")
}

func TestWithElements_MultiplesSucceed(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 4, 8, 40} {
		m, err := matrix.WithElements(4, make([]int, n))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n/4, m.Rows())
		assert.Equal(t, 4, m.Cols())
		assert.Equal(t, n, m.Len())
	}
}

func TestWithElements_ZeroWidth(t *testing.T) {
	t.Parallel()

	m, err := matrix.WithElements[int](0, nil)
	require.NoError(t, err)
	rows, cols := m.Shape()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
	assert.True(t, m.IsEmpty())
	_, _, ok := m.Iter().Next()
	assert.False(t, ok)

	_, err = matrix.WithElements(0, []int{1})
	require.ErrorIs(t, err, matrix.ErrInvalidWidth)

	_, err = matrix.WithElements(-2, []int{})
	require.ErrorIs(t, err, matrix.ErrInvalidWidth)
}

func TestWithDimensions_ZeroFilled(t *testing.T) {
	t.Parallel()

	m, err := matrix.WithDimensions[float64](2, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0}, m.Elements())
	assert.Equal(t, 2, m.Rows())

	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		e, err := matrix.WithDimensions[string](dims[0], dims[1])
		require.NoError(t, err)
		assert.True(t, e.IsEmpty(), "%v", dims)
		assert.Zero(t, e.Len())
	}

	_, err = matrix.WithDimensions[int](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestWithDimensions_Overflow(t *testing.T) {
	t.Parallel()

	m, err := matrix.WithDimensions[int](1<<62, 4)
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err = matrix.WithDimensions[int](1<<62, 0)
	require.NoError(t, err, "a zero-column matrix allocates nothing")
	require.True(t, m.IsEmpty())
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Elements())
	require.Equal(t, 3, m.Rows())

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	empty, err := matrix.FromRows[int](nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestAtSetRow(t *testing.T) {
	t.Parallel()

	m := MustElements(t, 3, Span(1, 6))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	require.NoError(t, m.Set(0, 1, 20))
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 20, 3}, row)

	row[0] = 99 // copy; storage untouched
	v, _ = m.At(0, 0)
	require.Equal(t, 1, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 0), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Matrix[int]
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := MustElements(t, 2, Span(1, 4))
	c := matrix.CloneMatrix(m)
	require.NoError(t, c.Set(0, 0, 100))
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	require.Equal(t, m.Cols(), c.Cols())
}
