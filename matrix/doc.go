// Package matrix provides a generic, fixed-width, row-major 2D container.
//
// A Matrix[T] is built from a flat element slice plus a row width
// (WithElements), from dimensions (WithDimensions, zero values) or from a
// slice of rows (FromRows). Construction is validated: an element count that
// does not fill the last row is reported with the exact number of missing
// elements.
//
// Every traversal pairs elements with their (row, col) coordinate through a
// cursor.Cursor:
//
//   - Iter / All:        read-only, restartable.
//   - IterMut / AllMut:  pointers into the storage; writes land in place.
//   - IntoIter:          moves the storage out; the matrix is left empty.
//
// Add and AddAssign add two matrices of the same width and length
// elementwise; AddWith and AddAssignWith accept a custom element operator.
//
// Shape predicates (IsEmpty, IsSquare, IsRowVector, IsColumn), Diagonal and
// IsIdentity round out the surface. Errors are sentinels (see errors.go)
// matched with errors.Is; shape details are carried by *ShapeError.
package matrix
