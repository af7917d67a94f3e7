// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM  *matrix.Matrix[float64]
	sinkMI *matrix.Matrix[int64]
	sinkS  string
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			x, y := randFloats(b, rng, n, n), randFloats(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			x, y := randFloats(b, rng, n, n), randFloats(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDivInt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(11))
			x, y := randInts(b, rng, n, n), randInts(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Div(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkFormatParse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(22))
			x := randInts(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = x.String()
				m, err := matrix.Parse[int64](sinkS)
				if err != nil {
					b.Fatal(err)
				}
				sinkMI = m
			}
		})
	}
}
