// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/cursor"
	"github.com/katalvlaran/lvgrid/matrix"
)

func TestIter_CoordinatesAndOrder(t *testing.T) {
	t.Parallel()

	m := MustElements(t, 3, []string{"a", "b", "c", "d", "e", "f"})
	positions, values := cursor.Collect(m.Iter())

	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, values)
	require.Equal(t, []cursor.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, positions)
}

func TestIter_Restartable(t *testing.T) {
	t.Parallel()

	m := MustElements(t, 2, Span(1, 4))
	it := m.Iter()
	_, _, _ = it.Next()
	_, _, _ = it.Next()

	// A fresh call starts again at (0,0).
	pos, v, ok := m.Iter().Next()
	require.True(t, ok)
	require.Equal(t, cursor.Position{}, pos)
	require.Equal(t, 1, v)
	require.Equal(t, 4, m.Len(), "Iter must not consume")
}

func TestIterMut_MutationIsolation(t *testing.T) {
	t.Parallel()

	m := MustElements(t, 3, Span(1, 9))
	for pos, p := range m.AllMut() {
		if pos == (cursor.Position{Row: 1, Col: 2}) {
			*p = -6
		}
	}

	want := []int{1, 2, 3, 4, 5, -6, 7, 8, 9}
	got := make([]int, 0, 9)
	for _, v := range m.All() {
		got = append(got, v)
	}
	require.Equal(t, want, got)
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 3, m.Rows())
}

func TestIntoIter_ConsumesAndRoundTrips(t *testing.T) {
	t.Parallel()

	orig := Span(10, 21)
	m := MustElements(t, 4, append([]int(nil), orig...))

	positions, values := cursor.Collect(m.IntoIter())
	require.Len(t, positions, 12)
	assert.Equal(t, cursor.Position{Row: 2, Col: 3}, positions[11])

	// The matrix gave up its storage.
	assert.Zero(t, m.Len())
	assert.Zero(t, m.Rows())
	assert.True(t, m.IsEmpty())
	_, _, ok := m.Iter().Next()
	assert.False(t, ok)

	back := MustElements(t, 4, values)
	require.Equal(t, orig, back.Elements())
}

func TestIntoIter_PartialTraversalIsSafe(t *testing.T) {
	t.Parallel()

	m := MustElements(t, 2, Span(1, 6))
	it := m.IntoIter()
	pos, v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, cursor.Position{}, pos)
	require.Equal(t, 1, v)
	it.Stop()

	_, _, ok = it.Next()
	require.False(t, ok)
}

func TestIter_NilMatrix(t *testing.T) {
	t.Parallel()

	var m *matrix.Matrix[int]
	_, _, ok := m.Iter().Next()
	require.False(t, ok)
	_, _, ok = m.IterMut().Next()
	require.False(t, ok)
	_, _, ok = m.IntoIter().Next()
	require.False(t, ok)
}
