// Package cursor provides the coordinate-tracking traversal adapter used by
// the matrix package.
//
// A Cursor wraps any Producer (a "give me the next element or tell me you are
// done" source) and re-emits every element paired with the (row, column)
// Position it occupies in a row-major grid of a fixed width:
//
//	(0,0) (0,1) ... (0,w-1)
//	(1,0) (1,1) ... (1,w-1)
//	...
//
// The Cursor logic is identical for every traversal mode; only the Producer
// differs:
//
//   - Values:  read-only traversal, yields copies of slice elements.
//   - Refs:    mutable traversal, yields *T pointing into the slice.
//   - Drain:   owned traversal, yields elements and clears the source slots.
//   - FromSeq: any iter.Seq (finite or infinite), pulled via iter.Pull.
//
// Cursors are single-pass and pull-based: nothing happens until Next is
// called, and stopping early leaves no state behind (call Stop when the
// producer came from FromSeq).
//
// A width of zero or less yields an always-empty cursor.
package cursor
