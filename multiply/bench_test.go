package multiply_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blockmat/multiply"
)

// benchCases are the (n, k) pairs to benchmark.
var benchCases = []struct{ n, k int }{
	{128, 16}, {128, 64}, {256, 32}, {256, 100},
}

// sink to defeat dead-code elimination
var sinkFlat []int32

func BenchmarkSequential(b *testing.B) {
	b.ReportAllocs()
	m := multiply.New()
	defer m.Close()
	for _, c := range benchCases {
		b.Run(fmt.Sprintf("n=%d/k=%d", c.n, c.k), func(b *testing.B) {
			A, B := randomFlat(c.n, 1337), randomFlat(c.n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := m.Sequential(A, B, c.k)
				if err != nil {
					b.Fatal(err)
				}
				sinkFlat = out
			}
		})
	}
}

func BenchmarkParallel(b *testing.B) {
	b.ReportAllocs()
	m := multiply.New()
	defer m.Close()
	for _, c := range benchCases {
		b.Run(fmt.Sprintf("n=%d/k=%d", c.n, c.k), func(b *testing.B) {
			A, B := randomFlat(c.n, 1337), randomFlat(c.n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := m.Parallel(A, B, c.k)
				if err != nil {
					b.Fatal(err)
				}
				sinkFlat = out
			}
		})
	}
}

func BenchmarkNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := randomFlat(n, 1), randomFlat(n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := multiply.Naive(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkFlat = out
			}
		})
	}
}
