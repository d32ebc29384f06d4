package solver_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lstsched/instance"
	"github.com/katalvlaran/lstsched/solver"
)

func BenchmarkSolve_Continuous(b *testing.B) {
	p, err := instance.Random(5, 20, 1, 50, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	md, err := solver.Uniform(p, p.Max(), solver.Continuous)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = solver.Solve(ctx, md); err != nil {
			b.Fatal(err)
		}
	}
}
