// SPDX-License-Identifier: MIT

// Package matrix - shape classification.
//
// Purpose:
//   - Cheap O(1) shape predicates (empty, square, row/column vector).
//   - Diagonal extraction and the identity check, both driven by the same
//     cursor coordinates as every other traversal.

package matrix

// IsEmpty reports whether the matrix has no rows or no columns.
func (m *Matrix[T]) IsEmpty() bool { return m.Rows() == 0 || m.Cols() == 0 }

// IsSquare reports whether Rows() == Cols(). The 0×0 matrix is square.
func (m *Matrix[T]) IsSquare() bool { return m.Rows() == m.Cols() }

// IsRowVector reports whether the matrix has exactly one row.
func (m *Matrix[T]) IsRowVector() bool { return m.Rows() == 1 }

// IsColumn reports whether the matrix has exactly one column.
func (m *Matrix[T]) IsColumn() bool { return m.Cols() == 1 }

// Diagonal returns copies of the entries at (i, i) for i < min(Rows, Cols),
// in order. It stops the traversal once the last diagonal row is passed.
// Complexity: O(min(r,c)*c).
func (m *Matrix[T]) Diagonal() []T {
	n := min(m.Rows(), m.Cols())
	out := make([]T, 0, n)
	for pos, v := range m.All() {
		if pos.Row >= n {
			break
		}
		if pos.Row == pos.Col {
			out = append(out, v)
		}
	}

	return out
}

// IsIdentity reports whether m is a non-empty square matrix with ones on the
// diagonal and zeros everywhere else.
// Complexity: O(n^2), stops at the first mismatch.
func IsIdentity[T Number](m *Matrix[T]) bool {
	if m == nil || m.IsEmpty() || !m.IsSquare() {
		return false
	}
	var zero, one T = 0, 1
	for pos, v := range m.All() {
		want := zero
		if pos.Row == pos.Col {
			want = one
		}
		if v != want {
			return false
		}
	}

	return true
}
