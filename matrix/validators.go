// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep constructors and operations minimal by delegating checks here.
//  - Return sentinel errors (or *ShapeError) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Width → Size).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateWidth checks that n elements can be laid out in rows of width.
//
// Rules:
//   - width < 0                 → ErrInvalidWidth.
//   - width == 0 && n > 0       → ErrInvalidWidth (row count undefined).
//   - width == 0 && n == 0      → ok (empty matrix).
//   - n % width != 0            → *ShapeError{Kind: ErrIncompleteRow}.
//
// The returned *ShapeError is not wrapped so errors.As finds it directly.
// Complexity: O(1).
func ValidateWidth(width, n int) error {
	if width < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateWidth(%d)", width), ErrInvalidWidth)
	}
	if width == 0 {
		if n > 0 {
			return validatorErrorf(fmt.Sprintf("ValidateWidth(0, len=%d)", n), ErrInvalidWidth)
		}
		return nil
	}
	if rem := n % width; rem != 0 {
		return &ShapeError{
			Op:      "ValidateWidth",
			Kind:    ErrIncompleteRow,
			Width:   width,
			Len:     n,
			Missing: width - rem,
		}
	}

	return nil
}

// ValidateSameSize ensures a and b are non-nil and have the same width and
// the same element count. Equal width and equal length imply equal row
// count; both are still compared so hand-built values are caught too.
// Complexity: O(1).
func ValidateSameSize[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if a.width != b.width || len(a.data) != len(b.data) {
		return &ShapeError{
			Op:         "ValidateSameSize",
			Kind:       ErrSizeMismatch,
			Width:      a.width,
			Len:        len(a.data),
			OtherWidth: b.width,
			OtherLen:   len(b.data),
		}
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}
