// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) so Add/Sub/Div and the
//     scalar forms share one validated loop instead of re-deriving it per call shape.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop over the row-major buffer.
//   - Exactly one allocation (the output); operands are read-only.

package matrix

import "errors"

// withOp tags err with op. A *ShapeMismatchError is re-labelled (copied)
// rather than wrapped so callers see the arithmetic operation in Op.
func withOp(op string, err error) error {
	var sm *ShapeMismatchError
	if errors.As(err, &sm) {
		return &ShapeMismatchError{Op: op, Expected: sm.Expected, Actual: sm.Actual}
	}
	return matrixErrorf(op, err)
}

// ewZip computes out[k] = f(a[k], b[k]) for equally shaped a and b.
// Errors: ErrNilMatrix, *ShapeMismatchError; both tagged with op.
// Time: O(r*c). Space: O(r*c).
func ewZip[T, R Number](op string, a, b *Matrix[T], f func(x, y T) R) (*Matrix[R], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, withOp(op, err)
	}
	out := &Matrix[R]{r: a.r, c: a.c, data: make([]R, len(a.data))}
	for k := range a.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out, nil
}

// ewMap computes out[k] = f(m[k]).
// Errors: ErrNilMatrix tagged with op.
// Time: O(r*c). Space: O(r*c).
func ewMap[T, R Number](op string, m *Matrix[T], f func(x T) R) (*Matrix[R], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, withOp(op, err)
	}
	out := &Matrix[R]{r: m.r, c: m.c, data: make([]R, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out, nil
}
