// Package grid provides the flat-buffer addressing layer shared by the GPP
// kernels: row-major 2D views over borrowed slices and the two-level index
// indirection that maps group-owned points to global plane-wave columns.
package grid

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a view's dimensions do not match its backing
// buffer, or when dimensions are not positive.
var ErrShape = errors.New("grid: buffer length does not match rows*cols")

// Array2D imposes row-major 2D addressing on a borrowed flat buffer.
// It owns no data and performs no copying; the element at (r, c) lives at
// flat index r*cols + c.
type Array2D[T any] struct {
	data []T
	rows int
	cols int
}

// NewArray2D wraps buf as a rows×cols view. The buffer length must be
// exactly rows*cols.
func NewArray2D[T any](buf []T, rows, cols int) (Array2D[T], error) {
	if rows < 0 || cols < 0 || len(buf) != rows*cols {
		return Array2D[T]{}, fmt.Errorf("%w: len=%d rows=%d cols=%d", ErrShape, len(buf), rows, cols)
	}

	return Array2D[T]{data: buf, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (a Array2D[T]) Rows() int { return a.rows }

// Cols returns the number of columns.
func (a Array2D[T]) Cols() int { return a.cols }

// Index returns the flat index of (r, c). It panics if either coordinate is
// out of range; callers validate shapes once up front and index freely in
// the hot loops.
func (a Array2D[T]) Index(r, c int) int {
	if uint(r) >= uint(a.rows) || uint(c) >= uint(a.cols) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", r, c, a.rows, a.cols))
	}

	return r*a.cols + c
}

// At returns the element at (r, c).
func (a Array2D[T]) At(r, c int) T {
	return a.data[a.Index(r, c)]
}

// Set stores v at (r, c).
func (a Array2D[T]) Set(r, c int, v T) {
	a.data[a.Index(r, c)] = v
}

// Row returns the contiguous slice backing row r. The kernels walk rows
// through this to keep the inner loop free of per-element index checks.
func (a Array2D[T]) Row(r int) []T {
	if uint(r) >= uint(a.rows) {
		panic(fmt.Sprintf("grid: row %d out of range %d", r, a.rows))
	}

	return a.data[r*a.cols : (r+1)*a.cols]
}

// Data returns the backing buffer.
func (a Array2D[T]) Data() []T { return a.data }
