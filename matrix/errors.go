// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the single
// structured error type (ShapeMismatchError). Every public operation returns
// these, wrapped with an operation tag; tests MUST check them via errors.Is.
// No operation panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("<op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> text format -> number parsing.

var (
	// ErrInvalidShape is returned when a constructor receives negative
	// dimensions, a value slice whose length is not rows*cols, or ragged rows.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Row and column are checked independently; At/Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub/Div
	// on different shapes, or Mul where a.Cols != b.Rows.
	// Arithmetic returns it as *ShapeMismatchError.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrWrongBracketFormat: the trimmed text is shorter than two bytes or is
	// not enclosed in '[' ... ']'.
	ErrWrongBracketFormat = errors.New("matrix: wrong bracket format")

	// ErrColumnsNotAligned: a row's element count differs from the first row's.
	ErrColumnsNotAligned = errors.New("matrix: columns not aligned")

	// ErrParseNumber: an element token could not be parsed as the element type.
	ErrParseNumber = errors.New("matrix: cannot parse number")

	// ErrNaNInf signals a NaN or ±Inf token under WithRejectNaNInf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// ShapeMismatchError reports the operand shape an operation expected and the
// one it got. For Add/Sub/Div Expected is the left operand's shape; for Mul
// Expected is {a.Cols, b.Cols}, i.e. the right operand shape that would fit.
type ShapeMismatchError struct {
	Op       string
	Expected Shape
	Actual   Shape
}

// Error implements error.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: expected %v, got %v", e.Op, ErrShapeMismatch, e.Expected, e.Actual)
}

// Unwrap lets errors.Is(err, ErrShapeMismatch) match.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }
