// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the nodal assembly and solve
// kernels on ring-shaped incidence matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// benchSizes are the node counts to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

// ringIncidence returns the incidence of an n-node ring with one chord per node.
func ringIncidence(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	edges := make([][2]int, 0, 2*n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n}, [2]int{i, (i + n/2) % n})
	}
	inc, err := matrix.BuildIncidence(n, edges)
	if err != nil {
		b.Fatal(err)
	}

	return inc
}

func BenchmarkNodalAssembly(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			inc := ringIncidence(b, n)
			w := make([]float64, inc.Rows())
			for i := range w {
				w[i] = 1 + float64(i%7)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sw, err := matrix.ScaleRows(inc, w)
				if err != nil {
					b.Fatal(err)
				}
				bt, err := matrix.Transpose(inc)
				if err != nil {
					b.Fatal(err)
				}
				l, err := matrix.Mul(bt, sw)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = l
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			inc := ringIncidence(b, n)
			bt, _ := matrix.Transpose(inc)
			l, err := matrix.Mul(bt, inc)
			if err != nil {
				b.Fatal(err)
			}
			keep := make([]int, n-1)
			for i := range keep {
				keep[i] = i + 1
			}
			red, err := l.Induced(keep, keep)
			if err != nil {
				b.Fatal(err)
			}
			rhs := make([]float64, n-1)
			rhs[n-2] = -1
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(red, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
