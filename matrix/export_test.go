// SPDX-License-Identifier: MIT
// Test-only exports of private kernels and storage.

package matrix

// EwZip_TestOnly exposes ewZip.
func EwZip_TestOnly[T, R Number](op string, a, b *Matrix[T], f func(x, y T) R) (*Matrix[R], error) {
	return ewZip(op, a, b, f)
}

// EwMap_TestOnly exposes ewMap.
func EwMap_TestOnly[T, R Number](op string, m *Matrix[T], f func(x T) R) (*Matrix[R], error) {
	return ewMap(op, m, f)
}

// RawData_TestOnly returns the backing slice itself (no copy) so tests can
// assert on ownership and the len == rows*cols invariant.
func RawData_TestOnly[T Number](m *Matrix[T]) []T { return m.data }
