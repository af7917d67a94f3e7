// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Transpose and IsIdentity.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestTranspose_Values(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 3, []int{-2, -1, 0, 1, 2, 3})
	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.True(t, got.Equal(MustNew(t, 3, 2, []int{-2, 1, -1, 2, 0, 3})), "got %v", got)

	// the method form is the same kernel
	viaMethod, err := m.Transpose()
	require.NoError(t, err)
	require.True(t, viaMethod.Equal(got))

	// source untouched
	require.Equal(t, "[-2,-1,0;1,2,3]", m.String())
}

// TestTranspose_Properties: shape swap and involution on random shapes.
func TestTranspose_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		r, c := rng.Intn(6), rng.Intn(6)
		m := randFloats(t, rng, r, c)

		tr, err := matrix.Transpose(m)
		require.NoError(t, err)
		tr2, err := matrix.Transpose(tr)
		require.NoError(t, err)

		rr, cc := tr.Shape()
		require.Equal(t, c, rr)
		require.Equal(t, r, cc)
		require.True(t, tr2.Equal(m), "transpose twice of %v", m)
	}
}

func TestTranspose_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

type celsius float32

func TestIsIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"int 3x3 sequence", MustParse[int](t, "[1,2,3;4,5,6;7,8,9]").IsIdentity(), false},
		{"float 4x4 identity", MustParse[float64](t, "[1,0,0,0; 0,1,0,0; 0,0,1,0; 0,0,0,1]").IsIdentity(), true},
		{"uint8 2x2 identity", MustParse[uint8](t, "[1,0;0,1]").IsIdentity(), true},
		{"named float type", MustParse[celsius](t, "[1,0;0,1]").IsIdentity(), true},
		{"bad diagonal", MustParse[int64](t, "[1,0;0,2]").IsIdentity(), false},
		{"bad off-diagonal", MustParse[int16](t, "[1,0;3,1]").IsIdentity(), false},
		{"non-square ones", MustParse[int](t, "[1,0,0;0,1,0]").IsIdentity(), false},
		{"1x1 one", MustParse[float32](t, "[1]").IsIdentity(), true},
		{"1x1 zero", MustParse[float32](t, "[0]").IsIdentity(), false},
		{"empty", MustNew[int](t, 0, 0, nil).IsIdentity(), true},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.got, tc.name)
	}
}

func TestZeroOne(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, matrix.Zero[int]())
	require.Equal(t, 1, matrix.One[int]())
	require.Equal(t, uint64(1), matrix.One[uint64]())
	require.Equal(t, 0.0, matrix.Zero[float64]())
	require.Equal(t, celsius(1), matrix.One[celsius]())
}
