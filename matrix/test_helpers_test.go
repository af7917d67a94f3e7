// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Matrix tests.
//   • Keep random data seeded so every failure reproduces.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew builds an r×c matrix from row-major values or fails the test.
func MustNew[T matrix.Number](tb testing.TB, r, c int, values []T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(r, c, values)
	require.NoError(tb, err)
	return m
}

// MustParse parses s or fails the test.
func MustParse[T matrix.Number](tb testing.TB, s string) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.Parse[T](s)
	require.NoError(tb, err)
	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)
	return v
}

// randInts returns an r×c matrix of int64 in [-1000, 1000) from a fixed seed.
func randInts(tb testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[int64] {
	tb.Helper()
	vals := make([]int64, r*c)
	for i := range vals {
		vals[i] = rng.Int63n(2000) - 1000
	}
	return MustNew(tb, r, c, vals)
}

// randFloats returns an r×c matrix of normally distributed float64 values.
func randFloats(tb testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[float64] {
	tb.Helper()
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.NormFloat64() * 1e3
	}
	return MustNew(tb, r, c, vals)
}

// seqInts returns 1..n as int.
func seqInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
