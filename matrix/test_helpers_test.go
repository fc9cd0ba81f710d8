// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/matrix"
)

// MustElements builds a matrix or fails the test immediately.
func MustElements[T any](tb testing.TB, width int, xs []T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.WithElements(width, xs)
	require.NoError(tb, err)

	return m
}

// Span returns [from, from+1, ..., to].
func Span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}

	return out
}

// asShapeError is errors.As for *matrix.ShapeError.
func asShapeError(err error, target **matrix.ShapeError) bool {
	return errors.As(err, target)
}
