// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operator set on Matrix[T]:
// element-wise addition, subtraction and negation, matrix and scalar
// multiplication, and matrix and scalar division.
//
// Contract:
//   - Operands are read-only; every call allocates and returns a fresh matrix.
//   - Shape violations are values (*ShapeMismatchError, matches ErrShapeMismatch),
//     reported synchronously by the failing call; nothing panics.
//   - Div and DivScalar always promote to float64, whatever T is, so integer
//     operands never lose their fractional quotient: [51] / 2 == [25.5].

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opNeg       = "Neg"
	opMul       = "Mul"
	opMulScalar = "MulScalar"
	opDiv       = "Div"
	opDivScalar = "DivScalar"
)

// Add returns a + b element-wise. Shapes must be identical.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b element-wise. Shapes must be identical.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(opSub, a, b, func(x, y T) T { return x - y })
}

// AddScalar returns m + s, broadcasting s to every element.
func AddScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return ewMap(opAddScalar, m, func(x T) T { return x + s })
}

// SubScalar returns m - s, broadcasting s to every element.
func SubScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return ewMap(opSubScalar, m, func(x T) T { return x - s })
}

// Neg returns -m. Unsigned element types wrap modulo 2^n, as Go's unary minus does.
func Neg[T Number](m *Matrix[T]) (*Matrix[T], error) {
	return ewMap(opNeg, m, func(x T) T { return -x })
}

// MulScalar returns m * s element-wise.
func MulScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return ewMap(opMulScalar, m, func(x T) T { return x * s })
}

// Mul returns the algebraic product a × b with shape (a.Rows, b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: i→j→k triple loop. Each output cell is seeded with the k=0
//     product, then k=1..n-1 are accumulated in ascending order, so float
//     results are bit-reproducible.
//
// Behavior highlights:
//   - An inner dimension of 0 yields a (a.Rows × b.Cols) zero matrix.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrInvalidShape when
// a.Rows*b.Cols overflows int (only reachable with an inner dimension of 0).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, withOp(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	if !shapeFits(rows, cols) {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d result: %w", rows, cols, ErrInvalidShape))
	}
	out := newZeros[T](rows, cols)
	if inner == 0 {
		return out, nil
	}

	var i, j, k int
	for i = 0; i < rows; i++ {
		rowA := i * inner
		for j = 0; j < cols; j++ {
			acc := a.data[rowA] * b.data[j]
			for k = 1; k < inner; k++ {
				acc += a.data[rowA+k] * b.data[k*cols+j]
			}
			out.data[i*cols+j] = acc
		}
	}

	return out, nil
}

// Div returns a / b element-wise as float64, converting both operands to
// float64 before dividing. Division by zero follows IEEE-754 (±Inf, NaN).
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Div[T Number](a, b *Matrix[T]) (*Matrix[float64], error) {
	return ewZip(opDiv, a, b, func(x, y T) float64 { return toFloat64(x) / toFloat64(y) })
}

// DivScalar returns m / s element-wise as float64, with the same promotion as Div.
func DivScalar[T Number](m *Matrix[T], s T) (*Matrix[float64], error) {
	fs := toFloat64(s)
	return ewMap(opDivScalar, m, func(x T) float64 { return toFloat64(x) / fs })
}
