// SPDX-License-Identifier: MIT

package adaptive_test

import (
	"testing"

	"github.com/katalvlaran/kirchhoff/adaptive"
	"github.com/katalvlaran/kirchhoff/network"
)

// benchmarkRun drives a w×w lattice corner to corner with unit conductances.
func benchmarkRun(b *testing.B, w, steps int) {
	net, err := network.Grid(w, w)
	if err != nil {
		b.Fatal(err)
	}
	g0 := make([]float64, net.NumEdges())
	for e := range g0 {
		g0[e] = 1
	}
	in := make([]float64, net.NumNodes())
	in[0], in[len(in)-1] = 1, -1

	s, err := adaptive.NewSolver(net, quiet())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = s.Run(g0, in, steps); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Grid4x4_10(b *testing.B) { benchmarkRun(b, 4, 10) }
func BenchmarkRun_Grid8x8_10(b *testing.B) { benchmarkRun(b, 8, 10) }
func BenchmarkRun_Grid8x8_50(b *testing.B) { benchmarkRun(b, 8, 50) }
