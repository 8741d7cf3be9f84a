// Package kernels_test provides benchmarks for the map/reduce kernel,
// using deterministic random fill for Dense sources.
package kernels_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemap/kernels"
	"github.com/katalvlaran/densemap/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
)

func randDense(b *testing.B, n int, seed int64, opts ...matrix.Option) *matrix.Dense[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return mustFilled(b, n, n, vals, opts...)
}

func BenchmarkFullMap(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randDense(b, n, 1337)
			res, err := matrix.NewDense[float64](n, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkM, err = kernels.MapAll(nil, res, src, double); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFullMap_Padded(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randDense(b, n, 42, matrix.WithPadding(7))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := kernels.MapAll(nil, nil, src, double)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkColumnReduce(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := kernels.Map(nil, nil, src, double, kernels.ColumnReduceOp(i%n))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
