// SPDX-License-Identifier: MIT

// Package matrix - structural queries and transforms.

package matrix

const opTranspose = "Transpose"

// IsSquare reports whether Rows() == Cols(). A 0×0 matrix is square; a nil
// matrix is not.
func (m *Matrix[T]) IsSquare() bool { return m != nil && m.r == m.c }

// IsIdentity reports whether m is square with One[T]() on the diagonal and
// Zero[T]() everywhere else. Non-square and nil matrices report false; a 0×0
// matrix is vacuously the identity.
// Complexity: O(n²), early exit on the first violation.
func (m *Matrix[T]) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	zero, one := Zero[T](), One[T]()
	idx := 0
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.data[idx]
			if (i == j && v != one) || (i != j && v != zero) {
				return false
			}
			idx++
		}
	}

	return true
}

// Transpose returns a new cols×rows matrix with out(i,j) = m(j,i).
// Target positions are filled in row-major order by pulling the matching
// source element; m is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	out := &Matrix[T]{r: cols, c: rows, data: make([]T, 0, rows*cols)}
	for i := 0; i < cols; i++ { // target row = source column
		for j := 0; j < rows; j++ { // target column = source row
			out.data = append(out.data, m.data[j*cols+i])
		}
	}

	return out, nil
}
