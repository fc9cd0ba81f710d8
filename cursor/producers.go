// SPDX-License-Identifier: MIT

// Package cursor - producers for the three traversal modes plus iter.Seq.
//
// Purpose:
//   - Values: read-only traversal over a slice (element copies).
//   - Refs:   mutable traversal over a slice (pointers into the backing array).
//   - Drain:  owned traversal; each slot is cleared once its element is handed out.
//   - FromSeq: bridge from push-style iter.Seq to the pull-style Producer.
//
// AI-Hints:
//   - None of the slice producers copy the slice; they index it in place.
//   - Drain mutates the slice it was given; hand it storage you no longer own.

package cursor

import "iter"

// valueProducer yields s[0], s[1], ... by value.
type valueProducer[T any] struct {
	s []T
	i int
}

// Values returns a Producer yielding copies of the elements of s in order.
// Complexity: O(1) per element, no allocation beyond the producer itself.
func Values[T any](s []T) Producer[T] { return &valueProducer[T]{s: s} }

func (p *valueProducer[T]) Next() (T, bool) {
	if p.i >= len(p.s) {
		var zero T
		return zero, false
	}
	v := p.s[p.i]
	p.i++

	return v, true
}

// refProducer yields &s[0], &s[1], ...
type refProducer[T any] struct {
	s []T
	i int
}

// Refs returns a Producer yielding a pointer to each element of s in order.
// Writes through the pointers land in s; the length of s never changes.
func Refs[T any](s []T) Producer[*T] { return &refProducer[T]{s: s} }

func (p *refProducer[T]) Next() (*T, bool) {
	if p.i >= len(p.s) {
		return nil, false
	}
	ref := &p.s[p.i]
	p.i++

	return ref, true
}

// drainProducer moves elements out of s, zeroing each slot after the move.
type drainProducer[T any] struct {
	s []T
	i int
}

// Drain returns a Producer that takes ownership of s: every element is
// yielded exactly once and its slot is reset to the zero value, so the
// producer never keeps a second reference to a handed-out element.
// When the last element is yielded the slice itself is released.
func Drain[T any](s []T) Producer[T] { return &drainProducer[T]{s: s} }

func (p *drainProducer[T]) Next() (T, bool) {
	var zero T
	if p.i >= len(p.s) {
		p.s = nil // release the backing array
		return zero, false
	}
	v := p.s[p.i]
	p.s[p.i] = zero
	p.i++

	return v, true
}

// SeqProducer pulls elements from an iter.Seq. It must be stopped when the
// traversal ends before the sequence is exhausted.
type SeqProducer[T any] struct {
	next func() (T, bool)
	stop func()
}

// Compile-time assertions.
var (
	_ Producer[int] = (*SeqProducer[int])(nil)
	_ Stopper       = (*SeqProducer[int])(nil)
)

// FromSeq converts seq into a Producer using iter.Pull. The sequence may be
// infinite. Call Stop (directly or via Cursor.Stop) to release it early.
func FromSeq[T any](seq iter.Seq[T]) *SeqProducer[T] {
	next, stop := iter.Pull(seq)

	return &SeqProducer[T]{next: next, stop: stop}
}

// Next pulls one element from the underlying sequence.
func (p *SeqProducer[T]) Next() (T, bool) { return p.next() }

// Stop releases the underlying sequence. Safe to call more than once.
func (p *SeqProducer[T]) Stop() { p.stop() }
