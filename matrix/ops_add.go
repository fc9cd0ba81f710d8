// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise addition of two same-sized matrices, as a fresh result
//     (Add/AddWith) or in place (AddAssign/AddAssignWith).
//
// Design:
//   - Validation happens BEFORE any operand is touched; on error both
//     operands are left exactly as they were.
//   - Elements are paired by ordinal zip (first with first, ...). With equal
//     widths that is the same as pairing by coordinate.
//   - Add consumes both operands through IntoIter; AddAssign consumes only
//     the right-hand operand and walks the left one with IterMut.
//
// Determinism & Performance:
//   - Single flat pass, O(r*c) time; Add allocates exactly one result buffer.

package matrix

import "slices"

const (
	ctxAdd       = "Add"
	ctxAddAssign = "AddAssign"
)

// plus is the built-in + for Addable element types.
func plus[T Addable](x, y T) T { return x + y }

// Add returns a + b elementwise. Both operands are consumed (left empty)
// on success. Errors: ErrNilMatrix, *ShapeError wrapping ErrSizeMismatch.
// Complexity: O(r*c).
func Add[T Addable](a, b *Matrix[T]) (*Matrix[T], error) {
	return addWith(ctxAdd, a, b, plus[T])
}

// AddAssign adds b into a in place. b is consumed (left empty) on success;
// a keeps its shape. Errors as for Add.
// Complexity: O(r*c), no allocation.
func AddAssign[T Addable](a, b *Matrix[T]) error {
	return addAssignWith(ctxAddAssign, a, b, plus[T])
}

// AddWith is Add for element types without a built-in + operator: add must
// return the sum of its arguments as a new value of the same type.
func AddWith[T any](a, b *Matrix[T], add func(x, y T) T) (*Matrix[T], error) {
	return addWith("AddWith", a, b, add)
}

// AddAssignWith is AddAssign with a caller-supplied element operator.
func AddAssignWith[T any](a, b *Matrix[T], add func(x, y T) T) error {
	return addAssignWith("AddAssignWith", a, b, add)
}

// addWith implements Add/AddWith.
//
// Implementation:
//   - Stage 1: validate operator and shapes (nothing consumed yet).
//   - Stage 2: give b a private copy if it shares a backing array with a,
//     then consume both operands into cursors.
//   - Stage 3: zip the cursors, collecting add(x, y) into a fresh buffer.
func addWith[T any](tag string, a, b *Matrix[T], add func(x, y T) T) (*Matrix[T], error) {
	if add == nil {
		return nil, matrixErrorf(tag, ErrNilOperator)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	width := a.width
	out := make([]T, 0, len(a.data))

	// a + a: one storage, consumed once.
	if a == b {
		for _, x := range a.IntoIter().All() {
			out = append(out, add(x, x))
		}
		return &Matrix[T]{width: width, data: out}, nil
	}

	detachShared(a, b)
	left, right := a.IntoIter(), b.IntoIter()
	for {
		_, x, okL := left.Next()
		_, y, okR := right.Next()
		if !okL || !okR {
			break
		}
		out = append(out, add(x, y))
	}

	return &Matrix[T]{width: width, data: out}, nil
}

// addAssignWith implements AddAssign/AddAssignWith.
func addAssignWith[T any](tag string, a, b *Matrix[T], add func(x, y T) T) error {
	if add == nil {
		return matrixErrorf(tag, ErrNilOperator)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return opErrorf(tag, err)
	}

	// a += a: consuming b would empty a, so double in place instead.
	if a == b {
		for _, p := range a.AllMut() {
			*p = add(*p, *p)
		}
		return nil
	}

	detachShared(a, b)
	dst, src := a.IterMut(), b.IntoIter()
	for {
		_, p, ok := dst.Next()
		if !ok {
			break
		}
		_, y, _ := src.Next() // same length, validated above
		*p = add(*p, y)
	}

	return nil
}

// sharesBacking reports whether x and y are views of the same backing array.
// Two slices share one exactly when the last element within their capacity
// is the same element.
func sharesBacking[T any](x, y []T) bool {
	if cap(x) == 0 || cap(y) == 0 {
		return false
	}

	return &x[:cap(x)][cap(x)-1] == &y[:cap(y)][cap(y)-1]
}

// detachShared copies b's storage when it shares a backing array with a.
// Draining one operand clears slots the other would still read, so
// distinct matrices built over one slice must not be drained in lockstep.
func detachShared[T any](a, b *Matrix[T]) {
	if sharesBacking(a.data, b.data) {
		b.data = slices.Clone(b.data)
	}
}
