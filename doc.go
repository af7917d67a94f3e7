// Package gomatrix is a small, dependency-light home for a generic dense
// numeric matrix value type.
//
// What is inside?
//
//	A single value type, matrix.Matrix[T], parameterised over every Go
//	integer and floating-point kind, with:
//		• Construction & shape: New, NewZeros, NewIdentity, FromRows, Shape
//		• Element access: bounds-checked At / Set
//		• Structure: Transpose, IsSquare, IsIdentity
//		• Text: canonical "[a,b;c,d]" format, Parse, TextMarshaler
//		• Arithmetic: Add, Sub, Neg, Mul, Div (matrix and scalar forms)
//
// Why?
//
//   - Shape errors are values, never panics: callers branch with errors.Is.
//   - Operands are never mutated; every operation returns a fresh matrix.
//   - Deterministic loop orders, so float results are reproducible.
//
// Layout:
//
//	matrix/              — the Matrix[T] value type and all operations
//	examples/matrixcalc/ — demo program that evaluates matrices from flags
//
// Quick example:
//
//	x, _ := matrix.Parse[int]("[1,2;3,4]")
//	y, _ := matrix.Mul(x, x)
//	fmt.Println(y) // [7,10;15,22]
//
//	go get github.com/katalvlaran/gomatrix
package gomatrix
