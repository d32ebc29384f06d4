package decision_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/greedy"
	"github.com/katalvlaran/lstsched/instance"
)

func BenchmarkDecide_Greedy(b *testing.B) {
	p, err := instance.Random(5, 20, 1, 50, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	d := greedy.Makespan(p)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = decision.Decide(ctx, p, d); err != nil {
			b.Fatal(err)
		}
	}
}
