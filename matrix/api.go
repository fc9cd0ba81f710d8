// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// ---------- Constructors ----------

// Zeros returns a rows×cols matrix of zero values.
// Thin alias of WithDimensions.
func Zeros[T any](rows, cols int) (*Matrix[T], error) { return WithDimensions[T](rows, cols) }

// ZerosLike returns a zero matrix with the same shape as m.
// A nil m yields ErrNilMatrix.
func ZerosLike[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return WithDimensions[T](m.Rows(), m.Cols())
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n^2) zeroing + one pass over the storage.
func Identity[T Number](n int) (*Matrix[T], error) {
	I, err := WithDimensions[T](n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	var one T = 1
	for pos, p := range I.AllMut() {
		if pos.Row == pos.Col {
			*p = one
		}
	}

	return I, nil
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.Rows())
}

// ---------- Elementwise ----------

// Sum is an alias for Add: elementwise a + b, consuming both operands.
func Sum[T Addable](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// CloneMatrix returns a structural clone of m. Thin wrapper over Clone.
func CloneMatrix[T any](m *Matrix[T]) *Matrix[T] { return m.Clone() }
