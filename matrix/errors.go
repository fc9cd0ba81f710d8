// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed ShapeError.
// All constructors and operations MUST return these sentinels (possibly
// wrapped) and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with a tag via matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid width/dimensions -> incomplete row / size mismatch.

var (
	// ErrIncompleteRow is returned when the element count is not a multiple
	// of the declared row width. Always carried by a *ShapeError.
	ErrIncompleteRow = errors.New("matrix: incomplete last row")

	// ErrSizeMismatch indicates that two operands differ in row width or
	// total element count. Always carried by a *ShapeError.
	ErrSizeMismatch = errors.New("matrix: matrices aren't the same size")

	// ErrInvalidWidth indicates a negative width, or a zero width with a
	// non-empty element list (the row count cannot be derived).
	ErrInvalidWidth = errors.New("matrix: invalid row width")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilOperator indicates that a nil element operator was passed to AddWith/AddAssignWith.
	ErrNilOperator = errors.New("matrix: nil element operator")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows indicates rows of differing lengths passed to FromRows.
	ErrRaggedRows = errors.New("matrix: all rows must have the same length")
)

// ShapeError reports a shape contract violation with the numbers involved.
// Kind is ErrIncompleteRow or ErrSizeMismatch; errors.Is(err, Kind) holds.
type ShapeError struct {
	Op   string // operation tag, e.g. "WithElements", "Add"
	Kind error  // sentinel describing the violation

	Width int // declared width (left-hand operand for ErrSizeMismatch)
	Len   int // element count (left-hand operand for ErrSizeMismatch)

	// Missing is the number of elements needed to complete the last row
	// (ErrIncompleteRow only): Width - Len%Width.
	Missing int

	// OtherWidth and OtherLen describe the right-hand operand (ErrSizeMismatch only).
	OtherWidth int
	OtherLen   int
}

// Error implements error.
func (e *ShapeError) Error() string {
	if errors.Is(e.Kind, ErrIncompleteRow) {
		return fmt.Sprintf("%s: %v: %d element(s) missing to complete the last row (width=%d, len=%d)",
			e.Op, e.Kind, e.Missing, e.Width, e.Len)
	}

	return fmt.Sprintf("%s: %v (width=%d, len=%d vs width=%d, len=%d)",
		e.Op, e.Kind, e.Width, e.Len, e.OtherWidth, e.OtherLen)
}

// Unwrap exposes Kind to errors.Is / errors.As.
func (e *ShapeError) Unwrap() error { return e.Kind }

// matrixErrorf wraps err with a call-site tag, preserving the sentinel via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// opErrorf tags err with the public operation name. A *ShapeError gets the
// tag as its Op and is returned unwrapped; anything else goes through matrixErrorf.
func opErrorf(tag string, err error) error {
	var se *ShapeError
	if errors.As(err, &se) {
		se.Op = tag
		return se
	}

	return matrixErrorf(tag, err)
}
