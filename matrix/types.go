// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file contains ONLY the Matrix container
// and the element constraints; constructors live in impl_matrix.go,
// traversal in impl_iter.go and addition in ops_add.go.
package matrix

import "golang.org/x/exp/constraints"

// Addable is the set of element types with a built-in + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Number is the set of element types with a meaningful 0 and 1, used by the
// identity helpers.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Matrix is a fixed-width, row-major, homogeneous 2D container.
//   - width is the column count, fixed at construction.
//   - data holds the elements in row-major order (offset = i*width + j).
//   - The row count is derived as len(data)/width and never stored, so the
//     two can not disagree.
//
// A Matrix owns its storage. It is not safe for concurrent mutation; any
// number of readers may call Iter concurrently while nobody mutates it.
type Matrix[T any] struct {
	width int // column count (>= 0); 0 only for matrices without elements
	data  []T // row-major storage, len(data) % width == 0
}
