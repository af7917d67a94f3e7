// SPDX-License-Identifier: MIT

// Package matrix - method forms.
// Each method is a one-line delegate to the package-level function of the same
// name, so m.Add(b) and Add(m, b) are interchangeable and share one kernel.

package matrix

// Transpose returns mᵀ. See Transpose.
func (m *Matrix[T]) Transpose() (*Matrix[T], error) { return Transpose(m) }

// Add returns m + b. See Add.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) { return Add(m, b) }

// Sub returns m - b. See Sub.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) { return Sub(m, b) }

// AddScalar returns m + s. See AddScalar.
func (m *Matrix[T]) AddScalar(s T) (*Matrix[T], error) { return AddScalar(m, s) }

// SubScalar returns m - s. See SubScalar.
func (m *Matrix[T]) SubScalar(s T) (*Matrix[T], error) { return SubScalar(m, s) }

// Neg returns -m. See Neg.
func (m *Matrix[T]) Neg() (*Matrix[T], error) { return Neg(m) }

// Mul returns m × b. See Mul.
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) { return Mul(m, b) }

// MulScalar returns m * s. See MulScalar.
func (m *Matrix[T]) MulScalar(s T) (*Matrix[T], error) { return MulScalar(m, s) }

// Div returns m / b as float64. See Div.
func (m *Matrix[T]) Div(b *Matrix[T]) (*Matrix[float64], error) { return Div(m, b) }

// DivScalar returns m / s as float64. See DivScalar.
func (m *Matrix[T]) DivScalar(s T) (*Matrix[float64], error) { return DivScalar(m, s) }
