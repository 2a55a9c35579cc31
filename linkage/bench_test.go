package linkage_test

import (
	"testing"

	"github.com/katalvlaran/fourbar/linkage"
)

// BenchmarkSolve measures one per-angle solve.
func BenchmarkSolve(b *testing.B) {
	k := linkage.NewCoefficients(linkage.MustNew(10, 20, 15, 18))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linkage.Solve(float64(i%360), k)
	}
}

// BenchmarkNewCoefficients measures the per-linkage setup.
func BenchmarkNewCoefficients(b *testing.B) {
	ls := linkage.MustNew(20, 60, 50, 70)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linkage.NewCoefficients(ls)
	}
}
