// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Validate the len(data) == rows*cols invariant once, at construction.
//
// Complexity quicksheet:
//   - New/NewZeros/NewIdentity/FromRows: O(r*c); At/Set: O(1); Clone/Values/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers

	opNew         = "New"
	opNewZeros    = "NewZeros"
	opNewIdentity = "NewIdentity"
	opFromRows    = "FromRows"
)

// denseErrorf wraps a sentinel with the accessor name and coordinates.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a dense row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both >= 0 and fixed for the lifetime.
//   - data is a flat buffer of length r*c (offset = i*c + j), owned exclusively.
type Matrix[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New builds a rows×cols matrix from values laid out in row-major order.
// The slice is copied; later changes to values do not affect the matrix.
//
// Errors:
//   - ErrInvalidShape if rows or cols is negative, rows*cols overflows int,
//     or len(values) != rows*cols.
//
// Complexity: O(rows*cols).
func New[T Number](rows, cols int, values []T) (*Matrix[T], error) {
	if !shapeFits(rows, cols) {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidShape))
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf(opNew,
			fmt.Errorf("%dx%d needs %d values, got %d: %w", rows, cols, rows*cols, len(values), ErrInvalidShape))
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// NewZeros returns a rows×cols matrix filled with Zero[T]().
// Errors: ErrInvalidShape on negative dimensions or when rows*cols overflows int.
func NewZeros[T Number](rows, cols int) (*Matrix[T], error) {
	if !shapeFits(rows, cols) {
		return nil, matrixErrorf(opNewZeros, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidShape))
	}
	return newZeros[T](rows, cols), nil
}

// shapeFits reports whether rows, cols >= 0 and rows*cols fits in an int,
// so len(data) == rows*cols can actually hold.
func shapeFits(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	return cols == 0 || rows <= math.MaxInt/cols
}

// newZeros allocates without validation; callers guarantee shapeFits(rows, cols).
func newZeros[T Number](rows, cols int) *Matrix[T] {
	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidShape when n < 0 or n*n overflows int.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	if !shapeFits(n, n) {
		return nil, matrixErrorf(opNewIdentity, fmt.Errorf("n=%d: %w", n, ErrInvalidShape))
	}
	m := newZeros[T](n, n)
	one := One[T]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// FromRows builds a matrix from a slice of equally long rows.
// An empty slice yields a 0×0 matrix.
// Errors: ErrInvalidShape if any row length differs from the first row's.
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return newZeros[T](0, 0), nil
	}
	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), c, ErrInvalidShape))
		}
		buf = append(buf, row...)
	}

	return &Matrix[T]{r: r, c: c, data: buf}, nil
}

// Shape queries are nil-safe: a nil matrix reports 0 rows and 0 columns.

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Dims returns the shape as a Shape value.
func (m *Matrix[T]) Dims() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// indexOf bounds-checks row and column independently and returns the
// row-major offset. A column past the end is rejected, never wrapped into
// the next row.
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrNilMatrix, ErrIndexOutOfBounds.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). This is the only mutation path of a Matrix.
// Errors: ErrNilMatrix, ErrIndexOutOfBounds.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with independent storage. Clone of nil is nil.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: buf}
}

// Values returns a copy of the elements in row-major order; nil for a nil matrix.
func (m *Matrix[T]) Values() []T {
	if m == nil {
		return nil
	}
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether m and other have the same shape and elements.
// Two nil matrices are equal; NaN elements never compare equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
