// SPDX-License-Identifier: MIT

// Package matrix - construction & safe accessors (row-major).
//
// Purpose:
//   - Build matrices from a flat row-major slice plus a width (validated), from
//     dimensions (zero-filled) or from a slice of rows.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the row count derived from len(data)/width (single source of truth).
//
// AI-Hints:
//   - WithElements takes ownership of the slice: it is stored, not copied.
//     Pass slices.Clone(xs) if you keep using xs.
//   - Use WithDimensions for zero-valued buffers; zero rows or cols are legal.
//
// Complexity quicksheet:
//   - WithElements: O(1); WithDimensions: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// ---------- error context tags ----------

const (
	ctxWithElements   = "WithElements"
	ctxWithDimensions = "WithDimensions"
	ctxFromRows       = "FromRows"
	ctxAt             = "At"
	ctxSet            = "Set"
	ctxRow            = "Row"
)

// indexErrorf wraps an error with method context and callsite indices.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// WithElements builds a matrix of the given row width over elements.
//
// Implementation:
//   - Stage 1: ValidateWidth(width, len(elements)).
//   - Stage 2: store width and the slice verbatim.
//
// Errors:
//   - ErrInvalidWidth for width < 0, or width == 0 with elements present.
//   - *ShapeError wrapping ErrIncompleteRow when len(elements) % width != 0;
//     its Missing field (and message) is width - len%width.
//
// An empty element list is accepted for any width >= 0.
// Complexity: O(1).
func WithElements[T any](width int, elements []T) (*Matrix[T], error) {
	if err := ValidateWidth(width, len(elements)); err != nil {
		return nil, opErrorf(ctxWithElements, err)
	}

	return &Matrix[T]{width: width, data: elements}, nil
}

// WithDimensions returns a rows×cols matrix filled with the zero value of T.
// Zero-sized matrices are valid (they classify as empty). When cols == 0
// the matrix has no storage and reports zero rows.
//
// Errors: ErrInvalidDimensions if rows < 0, cols < 0 or rows*cols overflows int.
// Complexity: O(rows*cols).
func WithDimensions[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) {
		return nil, indexErrorf(ctxWithDimensions, rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{width: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix from a slice of equally long rows. The rows are
// copied into a fresh flat buffer.
//
// Errors: ErrRaggedRows when rows differ in length.
// Complexity: O(r*c).
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	width := len(rows[0])
	if !lo.EveryBy(rows, func(r []T) bool { return len(r) == width }) {
		return nil, matrixErrorf(ctxFromRows, ErrRaggedRows)
	}

	return WithElements(width, lo.Flatten(rows))
}

// Rows returns the derived row count (0 for a nil or width-0 matrix).
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil || m.width == 0 {
		return 0
	}

	return len(m.data) / m.width
}

// Cols returns the column count (the row width).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.width
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Len returns the number of stored elements.
func (m *Matrix[T]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.width {
		return 0, ErrOutOfRange
	}

	return row*m.width + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange (wrapped with method and coordinates), ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, indexErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns v at (row, col). The shape never changes.
// Errors: ErrOutOfRange (wrapped with method and coordinates), ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return indexErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	off, err := m.indexOf(i, 0)
	if err != nil {
		return nil, indexErrorf(ctxRow, i, 0, err)
	}

	return slices.Clone(m.data[off : off+m.width]), nil
}

// Elements returns a copy of the flat row-major storage.
// Complexity: O(r*c).
func (m *Matrix[T]) Elements() []T {
	if m == nil {
		return nil
	}

	return slices.Clone(m.data)
}

// Clone returns a deep copy of the matrix storage (elements are copied by
// value; pointer elements still share their targets).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{width: m.width, data: slices.Clone(m.data)}
}
