// Package matrix implements Matrix[T], a generic dense numeric matrix value.
//
// The matrix package provides:
//
//   - Construction & shape: New, NewZeros, NewIdentity, FromRows, Shape, IsSquare.
//   - Element access: At / Set with independent row and column bounds checks.
//   - Structure: Transpose, IsIdentity.
//   - Text: the canonical "[e00,e01;e10,e11]" form via String/Format, its
//     inverse Parse, and encoding.TextMarshaler/TextUnmarshaler.
//   - Arithmetic: Add, Sub, Neg, Mul, Div and the scalar forms AddScalar,
//     SubScalar, MulScalar, DivScalar. Div/DivScalar always return float64.
//
// Storage is a single row-major slice: element (i, j) lives at i*Cols()+j.
// Every operation returns a new matrix; Set is the only mutation.
//
// Errors are sentinels (ErrShapeMismatch, ErrIndexOutOfBounds, ErrParseNumber, ...)
// wrapped with the operation name; match them with errors.Is. Shape errors from
// arithmetic are *ShapeMismatchError values carrying both shapes.
//
// Element types are any Number: every integer and float kind, named types included.
// Zero and One expose the identities used by IsIdentity and NewIdentity.
//
// See the examples in this package for usage patterns.
package matrix
