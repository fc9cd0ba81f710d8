// SPDX-License-Identifier: MIT

// Package cursor - position-tracking adapter over any Producer.
//
// Purpose:
//   - Annotate every produced element with its row-major (row, col) coordinate.
//   - Keep ONE coordinate algorithm for all traversal modes (read, mutate, own).
//
// Determinism & Policy:
//   - Positions are emitted in strict row-major order, matching producer order.
//   - No buffering: at most one element is pulled per Next call.
//   - Width <= 0 is accepted by New but yields nothing (the producer is never pulled).
//
// AI-Hints:
//   - Use All() with range-over-func; use Next() when you need to interleave
//     two cursors (see matrix.AddAssign).
//   - Always Stop() a cursor built over FromSeq if you break out early.

package cursor

import "iter"

// Cursor is a single-pass, pull-based iterator that pairs each element of
// the wrapped Producer with its Position in a grid of the given width.
//
// Invariant: 0 <= col < width whenever width > 0. After an element is
// produced col advances by one and wraps to 0 (row+1) exactly when it
// reaches width.
//
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	producer Producer[T] // wrapped element source (never copied into the cursor)
	width    int         // row width, fixed at construction
	row, col int         // position the NEXT element will receive
	done     bool        // sticky exhaustion flag
}

// New wraps p in a Cursor that breaks rows every width elements.
// No validation is performed; see the package doc for width <= 0.
// Complexity: O(1).
func New[T any](p Producer[T], width int) *Cursor[T] {
	return &Cursor[T]{producer: p, width: width}
}

// Next advances the cursor by one element.
//
// Implementation:
//   - Stage 1: pull the next element; on exhaustion mark the cursor done.
//   - Stage 2: capture the current (row, col) for that element.
//   - Stage 3: advance col, wrapping to the next row at width.
//
// Returns the captured position, the element and true; or the zero values
// and false when the traversal is over. Once false is returned, every later
// call returns false without touching the producer.
// Complexity: O(1) plus the producer's own cost.
func (c *Cursor[T]) Next() (Position, T, bool) {
	var zero T
	if c.done {
		return Position{}, zero, false
	}
	// A grid without columns has no cells to visit; never pull.
	if c.width <= 0 || c.producer == nil {
		c.done = true
		return Position{}, zero, false
	}

	v, ok := c.producer.Next()
	if !ok {
		c.done = true
		return Position{}, zero, false
	}

	pos := Position{Row: c.row, Col: c.col}
	c.col++
	if c.col == c.width {
		c.col = 0
		c.row++
	}

	return pos, v, true
}

// Peek returns the position the next produced element would receive.
// It does not pull from the producer.
func (c *Cursor[T]) Peek() Position { return Position{Row: c.row, Col: c.col} }

// Width returns the row width the cursor was built with.
func (c *Cursor[T]) Width() int { return c.width }

// Done reports whether the cursor has observed exhaustion (or was stopped).
// A false result does not promise that another element exists.
func (c *Cursor[T]) Done() bool { return c.done }

// Stop ends the traversal. If the wrapped producer implements Stopper its
// Stop method is called exactly once. Stop is idempotent.
func (c *Cursor[T]) Stop() {
	if c.done && c.producer == nil {
		return
	}
	if s, ok := c.producer.(Stopper); ok {
		s.Stop()
	}
	c.done = true
	c.producer = nil // drop the reference; the cursor can no longer pull
}

// All returns the remainder of the traversal as an iter.Seq2.
// The sequence is single-pass: ranging over it a second time yields only
// what is left (usually nothing). Breaking out of the loop leaves the
// cursor positioned after the last yielded element.
func (c *Cursor[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for {
			pos, v, ok := c.Next()
			if !ok || !yield(pos, v) {
				return
			}
		}
	}
}

// Collect drains c and returns the positions and elements it produced,
// index-aligned. Do not call it on a cursor over an infinite producer.
// Complexity: O(n).
func Collect[T any](c *Cursor[T]) ([]Position, []T) {
	var (
		positions []Position
		values    []T
	)
	for pos, v := range c.All() {
		positions = append(positions, pos)
		values = append(values, v)
	}

	return positions, values
}
