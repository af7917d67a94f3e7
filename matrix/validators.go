// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for operand checks used by arithmetic.
//  - Expose boolean pre-flight queries (CanAdd, CanMultiply) so callers can
//    test compatibility before committing to an operation.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil(a) → NotNil(b) → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Returns ErrNilMatrix or a *ShapeMismatchError (matches ErrShapeMismatch).
// Use for Add/Sub/Div.
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return &ShapeMismatchError{Op: "ValidateSameShape", Expected: a.Dims(), Actual: b.Dims()}
	}
	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// The reported Expected shape is {a.Cols, b.Cols}.
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return &ShapeMismatchError{
			Op:       "ValidateMulCompatible",
			Expected: Shape{Rows: a.c, Cols: b.c},
			Actual:   b.Dims(),
		}
	}
	return nil
}

// CanAdd reports whether Add/Sub/Div(a, b) would succeed.
func CanAdd[T Number](a, b *Matrix[T]) bool { return ValidateSameShape(a, b) == nil }

// CanMultiply reports whether Mul(a, b) would succeed.
func CanMultiply[T Number](a, b *Matrix[T]) bool { return ValidateMulCompatible(a, b) == nil }
