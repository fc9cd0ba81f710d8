// Package lvgrid is a small toolkit for row-major 2D grids with
// coordinate-aware traversal.
//
// Under the hood, everything is organized under two subpackages:
//
//	cursor/  Cursor, wraps any element producer and tags each element with (row, col)
//	matrix/  Matrix[T], a validated row-major container, read/mutable/owned traversal, addition
//
// Quick ASCII example (width 3, seven elements):
//
//	(0,0) (0,1) (0,2)
//	(1,0) (1,1) (1,2)
//	(2,0)
//
// See examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
