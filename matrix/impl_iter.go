// SPDX-License-Identifier: MIT

// Package matrix - positional traversal built on cursor.Cursor.
//
// Purpose:
//   - Expose three traversal modes (read, mutate, consume) that all share the
//     same coordinate logic: the storage's traversal primitive is handed to a
//     fresh cursor.Cursor with width = Cols().
//
// Determinism & Policy:
//   - Strict row-major order: (0,0), (0,1), ..., (0,c-1), (1,0), ...
//   - Iter/IterMut are restartable (each call starts at (0,0)); IntoIter is not.
//   - A width-0 matrix always yields an empty traversal.
//
// AI-Hints:
//   - Range over All()/AllMut() for the common case; use the *cursor.Cursor
//     forms when two traversals must advance in lockstep.

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvgrid/cursor"
)

// Iter returns a fresh cursor yielding (position, element copy) for every
// element in row-major order. The matrix is not modified.
// Complexity: O(1) to create, O(1) per step.
func (m *Matrix[T]) Iter() *cursor.Cursor[T] {
	if m == nil {
		return cursor.New(cursor.Values[T](nil), 0)
	}

	return cursor.New(cursor.Values(m.data), m.width)
}

// IterMut returns a fresh cursor yielding (position, *element). Writes through
// the pointer update the matrix in place; length and width never change.
// Only one IterMut traversal (and no Iter) should be active at a time.
func (m *Matrix[T]) IterMut() *cursor.Cursor[*T] {
	if m == nil {
		return cursor.New(cursor.Refs[T](nil), 0)
	}

	return cursor.New(cursor.Refs(m.data), m.width)
}

// IntoIter moves the storage out of m and returns a cursor yielding
// (position, element) once per element. After the call m is empty
// (Len() == 0, Rows() == 0); its width is kept. The returned cursor is the
// only holder of the elements and clears each slot as it hands it out.
func (m *Matrix[T]) IntoIter() *cursor.Cursor[T] {
	if m == nil {
		return cursor.New(cursor.Drain[T](nil), 0)
	}
	data := m.data
	m.data = nil

	return cursor.New(cursor.Drain(data), m.width)
}

// All is Iter as an iter.Seq2.
func (m *Matrix[T]) All() iter.Seq2[cursor.Position, T] { return m.Iter().All() }

// AllMut is IterMut as an iter.Seq2.
func (m *Matrix[T]) AllMut() iter.Seq2[cursor.Position, *T] { return m.IterMut().All() }
