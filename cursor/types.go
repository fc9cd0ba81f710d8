// SPDX-License-Identifier: MIT

// Package cursor: domain types shared by the Cursor and its producers.
// This file intentionally contains ONLY the Position coordinate and the
// Producer contract; traversal logic lives in cursor.go and the concrete
// producers in producers.go.
package cursor

import "fmt"

// Position is a (row, column) coordinate inside a row-major grid.
// Both fields are zero-based.
type Position struct {
	Row int // zero-based row index
	Col int // zero-based column index within the row
}

// PositionOf returns the position of the k-th element (k from 0) of a
// row-major sequence broken into rows of the given width.
// A width <= 0 has no valid positions; the zero Position is returned.
// Complexity: O(1).
func PositionOf(k, width int) Position {
	if width <= 0 {
		return Position{}
	}

	return Position{Row: k / width, Col: k % width}
}

// Offset returns the flat row-major offset Row*width + Col.
// Complexity: O(1).
func (p Position) Offset(width int) int { return p.Row*width + p.Col }

// String renders the position as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Producer is the sequence-producing capability a Cursor wraps.
//
// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted. Exhaustion is terminal: after the first false,
// every later call must also return false.
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts a plain function to the Producer interface.
type ProducerFunc[T any] func() (T, bool)

// Next calls f.
func (f ProducerFunc[T]) Next() (T, bool) { return f() }

// Stopper is implemented by producers that hold resources which must be
// released when a traversal ends early (see FromSeq).
type Stopper interface {
	Stop()
}
